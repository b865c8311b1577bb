package views

import (
	"monitorscreen/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	TesterTitle = "WebSocketTest"

	quitConfirmText = "Are you sure you want to quit?"
	logSplitOffset  = 0.75
)

// TesterView is the WebSocketTest window: broadcast log above, input below
type TesterView struct {
	app    fyne.App
	window fyne.Window

	log   *components.MessageLog
	input *components.MessageEntry

	sendHandler        func()
	previousHandler    func()
	testMessageHandler func()
	exitHandler        func()
}

func NewTesterView(app fyne.App, window fyne.Window) *TesterView {
	view := &TesterView{
		app:    app,
		window: window,
	}

	view.log = components.NewMessageLog()
	view.input = components.NewMessageEntry()
	view.input.OnSend = view.send
	view.input.OnPrevious = view.previous

	split := container.NewVSplit(view.log.GetContainer(), view.input)
	split.Offset = logSplitOffset
	window.SetContent(split)

	view.buildMenu()
	view.setupWindowEvents()

	return view
}

func (tv *TesterView) buildMenu() {
	exit := fyne.NewMenuItem("Exit", func() {
		if tv.exitHandler != nil {
			tv.exitHandler()
		}
	})
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Test Message", func() {
			if tv.testMessageHandler != nil {
				tv.testMessageHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		exit,
	)
	tv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (tv *TesterView) setupWindowEvents() {
	// The entry handles these itself while focused
	tv.window.Canvas().AddShortcut(components.SendShortcut, func(fyne.Shortcut) { tv.send() })
	tv.window.Canvas().AddShortcut(components.PreviousShortcut, func(fyne.Shortcut) { tv.previous() })

	tv.window.SetCloseIntercept(func() {
		if tv.exitHandler != nil {
			tv.exitHandler()
			return
		}
		tv.window.Close()
	})
}

func (tv *TesterView) send() {
	if tv.sendHandler != nil {
		tv.sendHandler()
	}
}

func (tv *TesterView) previous() {
	if tv.previousHandler != nil {
		tv.previousHandler()
	}
}

func (tv *TesterView) SetSendHandler(handler func()) {
	tv.sendHandler = handler
}

func (tv *TesterView) SetPreviousHandler(handler func()) {
	tv.previousHandler = handler
}

// SetTestMessageHandler sets the handler for File > Test Message
func (tv *TesterView) SetTestMessageHandler(handler func()) {
	tv.testMessageHandler = handler
}

func (tv *TesterView) SetExitHandler(handler func()) {
	tv.exitHandler = handler
}

func (tv *TesterView) AppendLog(line string) {
	tv.log.Append(line)
}

func (tv *TesterView) LogLines() []string {
	return tv.log.Lines()
}

func (tv *TesterView) InputText() string {
	return tv.input.Text
}

func (tv *TesterView) SetInputText(text string) {
	tv.input.SetText(text)
}

// Input exposes the message entry
func (tv *TesterView) Input() *components.MessageEntry {
	return tv.input
}

func (tv *TesterView) ConfirmExit(callback func(bool)) {
	dialog.ShowConfirm(TesterTitle, quitConfirmText, callback, tv.window)
}

func (tv *TesterView) Show() {
	tv.window.Show()
	tv.window.Canvas().Focus(tv.input)
}

func (tv *TesterView) Quit() {
	tv.app.Quit()
}

func (tv *TesterView) GetWindow() fyne.Window {
	return tv.window
}
