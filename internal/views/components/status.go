package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows a single status message along the bottom edge
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar(initial string) *StatusBar {
	sb := &StatusBar{}
	sb.createComponents(initial)
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents(initial string) {
	sb.statusLabel = widget.NewLabel(initial)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		widget.NewSeparator(),
		sb.statusLabel,
	)
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
