package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MessageLog is an append-only, scrolling text area
type MessageLog struct {
	scroll *container.Scroll
	label  *widget.Label
	lines  []string
}

func NewMessageLog() *MessageLog {
	ml := &MessageLog{}
	ml.label = widget.NewLabel("")
	ml.label.Wrapping = fyne.TextWrapWord
	ml.scroll = container.NewVScroll(ml.label)
	return ml
}

func (ml *MessageLog) Append(line string) {
	ml.lines = append(ml.lines, line)
	ml.label.SetText(strings.Join(ml.lines, "\n"))
	ml.scroll.ScrollToBottom()
}

func (ml *MessageLog) Lines() []string {
	lines := make([]string, len(ml.lines))
	copy(lines, ml.lines)
	return lines
}

func (ml *MessageLog) GetContainer() fyne.CanvasObject {
	return ml.scroll
}
