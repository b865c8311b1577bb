package commands

import (
	"errors"
	"io/fs"

	"monitorscreen/internal/config"
	"monitorscreen/internal/controllers"
	"monitorscreen/internal/logger"
	"monitorscreen/internal/shutdown"
	"monitorscreen/internal/views"
	"monitorscreen/internal/wsclient"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.monitorscreen.app"
	AppVersion = "1.0.0"
)

// Application wires the MonitorScreen window to its WebSocket client
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MonitorController
	view       *views.MonitorView
	conn       *wsclient.Client

	shutdown   *shutdown.Manager
	fullscreen bool
}

func NewApplication(opts config.MonitorOptions, log logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    controllers.MonitorAppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.MonitorTitle)
	window.Resize(fyne.NewSize(800, 600))
	window.CenterOnScreen()

	settings, err := config.Load(opts.ConfigPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warning("Application", "ignoring unreadable settings", map[string]interface{}{
			"error": err.Error(),
		})
	}
	uri := settings.URI
	if opts.URI != "" {
		uri = opts.URI
	}

	conn := wsclient.New(log)
	view := views.NewMonitorView(fyneApp, window)
	controller := controllers.NewMonitorController(view, conn, fyne.Do, log, uri, opts.ConfigPath)

	view.SetConnectHandler(controller.Connect)
	view.SetExitHandler(controller.Exit)

	log.Info("Application", "initialized", map[string]interface{}{
		"version": AppVersion,
		"config":  opts.ConfigPath,
		"uri":     uri,
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		conn:       conn,
		shutdown:   shutdown.NewManager(log),
		fullscreen: opts.Fullscreen,
	}
}

// Run blocks until the window is closed or a signal arrives
func (a *Application) Run() error {
	a.shutdown.Register(a.conn)
	a.shutdown.Register(shutdown.Func(a.controller.Shutdown))
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.controller.Start(a.shutdown.Context())

	a.view.SetFullScreen(a.fullscreen)
	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
