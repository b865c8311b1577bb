package views

import (
	"monitorscreen/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	MonitorTitle = "MonitorScreen"

	exitConfirmText       = "Are you sure you want to exit?"
	disconnectConfirmText = "End current connection?"
	connectText           = "Connect"
	uriFieldText          = "WebSocket URI"
)

// MonitorView is the MonitorScreen window: value in the middle, parameter
// buttons on the right, status along the bottom.
type MonitorView struct {
	app    fyne.App
	window fyne.Window

	mainContainer *fyne.Container
	valueDisplay  *components.ValueDisplay
	paramList     *components.ParameterList
	statusBar     *components.StatusBar

	connectHandler func()
	exitHandler    func()
}

func NewMonitorView(app fyne.App, window fyne.Window) *MonitorView {
	view := &MonitorView{
		app:    app,
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.buildMenu()
	view.setupWindowEvents()

	return view
}

func (mv *MonitorView) initializeComponents() {
	mv.valueDisplay = components.NewValueDisplay()
	mv.paramList = components.NewParameterList()
	mv.statusBar = components.NewStatusBar("")
}

func (mv *MonitorView) buildLayout() {
	parameters := container.NewVScroll(mv.paramList.GetContainer())

	mv.mainContainer = container.NewBorder(
		nil,                            // top
		mv.statusBar.GetContainer(),    // bottom
		nil,                            // left
		parameters,                     // right
		mv.valueDisplay.GetContainer(), // center
	)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MonitorView) buildMenu() {
	exit := fyne.NewMenuItem("Exit", func() {
		if mv.exitHandler != nil {
			mv.exitHandler()
		}
	})
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem(connectText+"...", func() {
			if mv.connectHandler != nil {
				mv.connectHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		exit,
	)
	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (mv *MonitorView) setupWindowEvents() {
	mv.window.SetCloseIntercept(func() {
		if mv.exitHandler != nil {
			mv.exitHandler()
			return
		}
		mv.window.Close()
	})
}

// SetConnectHandler sets the handler for File > Connect
func (mv *MonitorView) SetConnectHandler(handler func()) {
	mv.connectHandler = handler
}

// SetExitHandler sets the handler for File > Exit and the close button
func (mv *MonitorView) SetExitHandler(handler func()) {
	mv.exitHandler = handler
}

func (mv *MonitorView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MonitorView) Status() string {
	return mv.statusBar.GetStatus()
}

func (mv *MonitorView) SetValue(value string) {
	mv.valueDisplay.SetText(value)
}

func (mv *MonitorView) Value() string {
	return mv.valueDisplay.Text()
}

func (mv *MonitorView) AddParameter(name string, onSelect func()) {
	mv.paramList.Add(name, onSelect)
}

// ParameterButton exposes a parameter's button, nil if unknown
func (mv *MonitorView) ParameterButton(name string) *widget.Button {
	return mv.paramList.Button(name)
}

func (mv *MonitorView) FitText() {
	mv.valueDisplay.Fit(mv.ContentSize())
}

func (mv *MonitorView) TextSize() float32 {
	return mv.valueDisplay.TextSize()
}

func (mv *MonitorView) ContentSize() fyne.Size {
	return mv.window.Canvas().Size()
}

func (mv *MonitorView) ConfirmExit(callback func(bool)) {
	dialog.ShowConfirm(MonitorTitle, exitConfirmText, callback, mv.window)
}

func (mv *MonitorView) ConfirmDisconnect(callback func(bool)) {
	dialog.ShowConfirm(MonitorTitle, disconnectConfirmText, callback, mv.window)
}

// PromptURI asks for a WebSocket URI, prefilled with current
func (mv *MonitorView) PromptURI(current string, callback func(string, bool)) {
	entry := widget.NewEntry()
	entry.SetText(current)
	entry.SetPlaceHolder("ws://localhost:1234")

	form := widget.NewForm(widget.NewFormItem(uriFieldText, entry))

	prompt := dialog.NewCustomConfirm(connectText, connectText, "Cancel", form, func(confirmed bool) {
		callback(entry.Text, confirmed)
	}, mv.window)
	prompt.Resize(fyne.NewSize(420, 180))
	prompt.Show()
	mv.window.Canvas().Focus(entry)
}

func (mv *MonitorView) SetFullScreen(fullscreen bool) {
	mv.window.SetFullScreen(fullscreen)
}

func (mv *MonitorView) Show() {
	mv.window.Show()
}

func (mv *MonitorView) Quit() {
	mv.app.Quit()
}

func (mv *MonitorView) GetWindow() fyne.Window {
	return mv.window
}
