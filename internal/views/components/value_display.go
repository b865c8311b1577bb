package components

import (
	"monitorscreen/internal/fontscale"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

const (
	ButtonOffset    = 20
	HeightOffset    = 50
	initialTextSize = 48
)

// ValueDisplay renders the current value centred and as large as fits
type ValueDisplay struct {
	container *fyne.Container
	text      *canvas.Text
	scaler    fontscale.Scaler
}

func NewValueDisplay() *ValueDisplay {
	vd := &ValueDisplay{}

	vd.text = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	vd.text.Alignment = fyne.TextAlignCenter
	vd.text.TextStyle = fyne.TextStyle{Bold: true}
	vd.text.TextSize = initialTextSize

	vd.scaler = fontscale.Scaler{
		Measure: func(text string, size float32) fyne.Size {
			return fyne.MeasureText(text, size, vd.text.TextStyle)
		},
		ButtonWidth:  ButtonWidth,
		ButtonOffset: ButtonOffset,
		HeightOffset: HeightOffset,
	}

	vd.container = container.NewCenter(vd.text)
	return vd
}

func (vd *ValueDisplay) SetText(value string) {
	vd.text.Text = value
	vd.text.Refresh()
}

func (vd *ValueDisplay) Text() string {
	return vd.text.Text
}

func (vd *ValueDisplay) TextSize() float32 {
	return vd.text.TextSize
}

// Fit rescales the text for a window of the given size
func (vd *ValueDisplay) Fit(window fyne.Size) {
	size, changed := vd.scaler.Next(vd.text.TextSize, vd.text.Text, window)
	if !changed {
		return
	}
	vd.text.TextSize = size
	vd.text.Refresh()
}

func (vd *ValueDisplay) GetContainer() *fyne.Container {
	return vd.container
}
