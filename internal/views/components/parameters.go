package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ButtonWidth is the minimum width of the parameter column
const ButtonWidth = 150

// ParameterList stacks one button per parameter, in discovery order
type ParameterList struct {
	container *fyne.Container
	buttons   map[string]*widget.Button
	order     []string
}

func NewParameterList() *ParameterList {
	pl := &ParameterList{
		buttons: make(map[string]*widget.Button),
	}

	// Keeps the column at ButtonWidth even while it is empty
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(ButtonWidth, 0))

	pl.container = container.NewVBox(strut)
	return pl
}

// Add appends a button for name. Duplicate names are ignored.
func (pl *ParameterList) Add(name string, onSelect func()) {
	if _, exists := pl.buttons[name]; exists {
		return
	}

	button := widget.NewButton(name, onSelect)
	button.Importance = widget.LowImportance

	pl.buttons[name] = button
	pl.order = append(pl.order, name)
	pl.container.Add(button)
}

// Button returns the button for name, or nil
func (pl *ParameterList) Button(name string) *widget.Button {
	return pl.buttons[name]
}

func (pl *ParameterList) Names() []string {
	names := make([]string, len(pl.order))
	copy(names, pl.order)
	return names
}

func (pl *ParameterList) GetContainer() *fyne.Container {
	return pl.container
}
