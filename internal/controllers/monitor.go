package controllers

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"monitorscreen/internal/config"
	"monitorscreen/internal/logger"
	"monitorscreen/internal/registry"
	"monitorscreen/internal/telemetry"
	"monitorscreen/internal/wsclient"

	"fyne.io/fyne/v2"
)

const (
	MonitorAppName  = "MonitorScreen"
	MonitorTick     = 50 * time.Millisecond
	DisconnectedMsg = "Disconnected"

	connectedToText     = " connected to "
	disconnectedMessage = " disconnected"
	secureScheme        = "wss"
)

// MonitorView is the window MonitorController drives. All methods are
// called on the UI thread.
type MonitorView interface {
	SetStatus(status string)
	SetValue(value string)
	AddParameter(name string, onSelect func())
	FitText()
	ContentSize() fyne.Size
	ConfirmExit(callback func(bool))
	ConfirmDisconnect(callback func(bool))
	PromptURI(current string, callback func(uri string, ok bool))
	Quit()
}

// Connection is the socket MonitorController owns
type Connection interface {
	SetHandlers(h wsclient.Handlers)
	State() wsclient.State
	Open(ctx context.Context, uri string)
	SendText(message string) error
	Close() error
}

// Dispatcher runs fn on the UI thread. Production code passes fyne.Do.
type Dispatcher func(fn func())

// MonitorController holds no locks around its state: every mutation happens
// inside the dispatcher.
type MonitorController struct {
	view       MonitorView
	conn       Connection
	params     *registry.Registry
	dispatch   Dispatcher
	logger     logger.Logger
	configPath string

	uri      string
	lastSize fyne.Size

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

func NewMonitorController(view MonitorView, conn Connection, dispatch Dispatcher,
	log logger.Logger, uri, configPath string) *MonitorController {
	c := &MonitorController{
		view:       view,
		conn:       conn,
		params:     registry.New(),
		dispatch:   dispatch,
		logger:     log,
		configPath: configPath,
		uri:        uri,
	}

	conn.SetHandlers(wsclient.Handlers{
		OnConnected:    func() { c.dispatch(c.handleConnected) },
		OnDisconnected: func() { c.dispatch(c.handleDisconnected) },
		OnText: func(message string) {
			c.dispatch(func() { c.HandleMessage(message) })
		},
	})
	view.SetStatus(DisconnectedMsg)
	return c
}

// Start runs the tick loop until Shutdown or ctx ends
func (c *MonitorController) Start(ctx context.Context) {
	c.ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(MonitorTick)
		defer ticker.Stop()

		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				c.dispatch(c.Tick)
			}
		}
	}()
}

// Tick reconnects when idle and refits the value after a resize
func (c *MonitorController) Tick() {
	if c.conn.State() == wsclient.Unconnected && c.uri != "" {
		c.conn.Open(c.context(), c.uri)
	}
	if size := c.view.ContentSize(); size != c.lastSize {
		c.lastSize = size
		c.view.FitText()
	}
}

func (c *MonitorController) context() context.Context {
	if c.ctx != nil {
		return c.ctx
	}
	return context.Background()
}

func (c *MonitorController) URI() string {
	return c.uri
}

func (c *MonitorController) Parameters() *registry.Registry {
	return c.params
}

func (c *MonitorController) handleConnected() {
	if err := c.conn.SendText(MonitorAppName + connectedToText + c.uri); err != nil {
		c.logger.Warning("MonitorController", "greeting not sent", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.view.SetStatus(c.uri)

	if err := config.Save(c.configPath, config.Settings{URI: c.uri}); err != nil {
		c.logger.Warning("MonitorController", "settings not saved", map[string]interface{}{
			"path":  c.configPath,
			"error": err.Error(),
		})
	}
}

func (c *MonitorController) handleDisconnected() {
	c.view.SetStatus(DisconnectedMsg)
}

// HandleMessage applies one payload received from the server
func (c *MonitorController) HandleMessage(payload string) {
	msg := telemetry.Parse(payload)

	if c.params.Observe(msg) {
		name := msg.Name
		c.view.AddParameter(name, func() { c.SelectParameter(name) })
		c.logger.Debug("MonitorController", "parameter discovered", map[string]interface{}{
			"name":  name,
			"count": c.params.Len(),
		})
	}

	if c.params.ShouldDisplay(msg.Name) {
		c.view.SetStatus(telemetry.StatusLine(c.uri, msg.Name, msg.Time))
		c.view.SetValue(msg.Value)
		c.view.FitText()
	}
}

// SelectParameter pins the display to name and shows its last reading
func (c *MonitorController) SelectParameter(name string) {
	entry := c.params.Select(name)
	c.view.SetStatus(telemetry.StatusLine(c.uri, name, entry.Time))
	c.view.SetValue(entry.Value)
	c.view.FitText()
}

// Connect asks for a new uri, confirming first if a connection is open.
// The tick loop dials the new uri once the old connection is closed.
func (c *MonitorController) Connect() {
	if c.conn.State() == wsclient.Connected {
		c.view.ConfirmDisconnect(func(yes bool) {
			if yes {
				c.promptURI()
			}
		})
		return
	}
	c.promptURI()
}

func (c *MonitorController) promptURI() {
	c.view.PromptURI(c.uri, func(uri string, ok bool) {
		if ok {
			if err := validateURI(uri); err != nil {
				c.logger.Warning("MonitorController", "uri rejected", map[string]interface{}{
					"uri":   uri,
					"error": err.Error(),
				})
			} else {
				c.uri = uri
			}
		}
		c.CloseConnection()
	})
}

var errSecureScheme = errors.New("wss connections are not supported")

func validateURI(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == secureScheme {
		return errSecureScheme
	}
	return nil
}

// CloseConnection says goodbye to the server and drops the socket
func (c *MonitorController) CloseConnection() {
	c.closeSocket()
	c.view.SetStatus(DisconnectedMsg)
}

func (c *MonitorController) closeSocket() {
	if err := c.conn.SendText(MonitorAppName + disconnectedMessage); err != nil && !errors.Is(err, wsclient.ErrNotConnected) {
		c.logger.Warning("MonitorController", "farewell not sent", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := c.conn.Close(); err != nil {
		c.logger.Error("MonitorController", err, nil)
	}
}

// Exit confirms, then shuts down and quits
func (c *MonitorController) Exit() {
	c.view.ConfirmExit(func(yes bool) {
		if !yes {
			return
		}
		c.Shutdown()
		c.view.Quit()
	})
}

// Shutdown stops the tick loop and closes the connection without touching
// the view, so it is safe from any goroutine.
func (c *MonitorController) Shutdown() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.closeSocket()
		c.logger.Info("MonitorController", "shutdown complete", nil)
	})
}
