package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var (
	// SendShortcut is Ctrl+Return (Cmd+Return on macOS)
	SendShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierShortcutDefault}
	// PreviousShortcut is Ctrl+Up (Cmd+Up on macOS)
	PreviousShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyUp, Modifier: fyne.KeyModifierShortcutDefault}
)

// MessageEntry is a multi-line entry that keeps the send and recall
// shortcuts working while it has focus.
type MessageEntry struct {
	widget.Entry

	OnSend     func()
	OnPrevious func()
}

func NewMessageEntry() *MessageEntry {
	e := &MessageEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.PlaceHolder = "Message to broadcast"
	e.ExtendBaseWidget(e)
	return e
}

func (e *MessageEntry) TypedShortcut(s fyne.Shortcut) {
	custom, ok := s.(*desktop.CustomShortcut)
	if !ok || custom.Modifier != fyne.KeyModifierShortcutDefault {
		e.Entry.TypedShortcut(s)
		return
	}

	switch custom.KeyName {
	case fyne.KeyReturn, fyne.KeyEnter:
		if e.OnSend != nil {
			e.OnSend()
		}
	case fyne.KeyUp:
		if e.OnPrevious != nil {
			e.OnPrevious()
		}
	default:
		e.Entry.TypedShortcut(s)
	}
}
