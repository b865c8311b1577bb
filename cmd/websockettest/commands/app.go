package commands

import (
	"context"

	"monitorscreen/internal/bridge"
	"monitorscreen/internal/config"
	"monitorscreen/internal/controllers"
	"monitorscreen/internal/hub"
	"monitorscreen/internal/logger"
	"monitorscreen/internal/shutdown"
	"monitorscreen/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.monitorscreen.websockettest"
	AppVersion = "1.0.0"
)

// Application wires the WebSocketTest window to the hub and the relay
type Application struct {
	fyneApp fyne.App
	logger  logger.Logger

	controller *controllers.TesterController
	view       *views.TesterView
	server     *hub.Hub
	relay      bridge.Relay

	shutdown *shutdown.Manager
}

func NewApplication(opts config.TesterOptions, log logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    controllers.TesterAppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.TesterTitle)
	window.Resize(fyne.NewSize(640, 480))
	window.CenterOnScreen()

	relay := newRelay(opts, log)
	server := hub.New(log)
	view := views.NewTesterView(fyneApp, window)
	controller := controllers.NewTesterController(view, server, relay, fyne.Do, log, opts.Port)

	view.SetSendHandler(controller.Send)
	view.SetPreviousHandler(controller.Previous)
	view.SetTestMessageHandler(controller.SendTestMessage)
	view.SetExitHandler(controller.Exit)

	return &Application{
		fyneApp:    fyneApp,
		logger:     log,
		controller: controller,
		view:       view,
		server:     server,
		relay:      relay,
		shutdown:   shutdown.NewManager(log),
	}
}

// newRelay connects to NATS when configured. Without it, or when the server
// is unreachable, broadcasts stay local.
func newRelay(opts config.TesterOptions, log logger.Logger) bridge.Relay {
	if opts.NATSURL == "" {
		return bridge.NoopRelay{}
	}

	relay, err := bridge.NewNATSRelay(opts.NATSURL, opts.NATSSubject)
	if err != nil {
		log.Warning("Application", "relay disabled", map[string]interface{}{
			"url":   opts.NATSURL,
			"error": err.Error(),
		})
		return bridge.NoopRelay{}
	}

	log.Info("Application", "relay connected", map[string]interface{}{
		"url":     opts.NATSURL,
		"subject": relay.Subject(),
	})
	return relay
}

// Run blocks until the window is closed or a signal arrives
func (a *Application) Run() error {
	a.shutdown.Register(shutdown.Func(func() {
		if err := a.relay.Close(); err != nil {
			a.logger.Error("Application", err, nil)
		}
	}))
	a.shutdown.Register(shutdown.Func(func() {
		a.controller.Shutdown(context.Background())
	}))
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	if err := a.controller.Start(); err != nil {
		a.logger.Warning("Application", "server not listening, window stays open", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
