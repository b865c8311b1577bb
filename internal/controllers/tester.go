package controllers

import (
	"context"
	"fmt"
	"sync"

	"monitorscreen/internal/bridge"
	"monitorscreen/internal/hub"
	"monitorscreen/internal/logger"
)

const (
	TesterAppName = "WebSocketTest"

	listeningText = "Server listening on port "
	infoText      = ". Connect with ws://localhost:%d, Ctrl+Enter sends, Ctrl+Up recalls the last message."
	messagePrefix = "> "

	// TestMessage is what File > Test Message broadcasts
	TestMessage = `{"name":"test","value":"Hello, World!","time":"00:00:00"}`
)

// TesterView is the WebSocketTest window, called on the UI thread
type TesterView interface {
	AppendLog(line string)
	InputText() string
	SetInputText(text string)
	ConfirmExit(callback func(bool))
	Quit()
}

// Server is the broadcast side of the hub
type Server interface {
	SetHandlers(h hub.Handlers)
	Start(addr string) error
	Broadcast(message string) int
	Shutdown(ctx context.Context) error
}

type origin int

const (
	fromLocal origin = iota
	fromClient
	fromRelay
)

type TesterController struct {
	view     TesterView
	server   Server
	relay    bridge.Relay
	dispatch Dispatcher
	logger   logger.Logger
	port     int

	prevText    string
	unsubscribe func()
	stopOnce    sync.Once
}

func NewTesterController(view TesterView, server Server, relay bridge.Relay,
	dispatch Dispatcher, log logger.Logger, port int) *TesterController {
	if relay == nil {
		relay = bridge.NoopRelay{}
	}
	c := &TesterController{
		view:     view,
		server:   server,
		relay:    relay,
		dispatch: dispatch,
		logger:   log,
		port:     port,
	}

	server.SetHandlers(hub.Handlers{
		OnConnect: func(id string) {
			c.logger.Debug("TesterController", "client joined", map[string]interface{}{"client": id})
		},
		OnDisconnect: func(id string) {
			c.logger.Debug("TesterController", "client left", map[string]interface{}{"client": id})
		},
		OnText: func(_ string, message string) {
			c.dispatch(func() { c.receive(message, fromClient) })
		},
	})
	return c
}

// Start subscribes to the relay and binds the server. A bind failure is
// shown in the log rather than aborting the tool, and relayed messages are
// still logged.
func (c *TesterController) Start() error {
	unsubscribe, err := c.relay.Subscribe(func(message string) {
		c.dispatch(func() { c.receive(message, fromRelay) })
	})
	if err != nil {
		c.logger.Error("TesterController", err, nil)
	} else {
		c.unsubscribe = unsubscribe
	}

	if err := c.server.Start(fmt.Sprintf(":%d", c.port)); err != nil {
		c.view.AppendLog(err.Error())
		c.logger.Error("TesterController", err, map[string]interface{}{"port": c.port})
		return err
	}
	c.view.AppendLog(listeningText + fmt.Sprint(c.port) + fmt.Sprintf(infoText, c.port))
	return nil
}

func (c *TesterController) receive(message string, from origin) {
	recipients := c.server.Broadcast(message)

	if from != fromRelay {
		if err := c.relay.Publish(context.Background(), message); err != nil {
			c.logger.Warning("TesterController", "relay publish failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	c.view.AppendLog(messagePrefix + message)
	c.logger.Debug("TesterController", "broadcast", map[string]interface{}{
		"recipients": recipients,
		"origin":     int(from),
	})
}

// Send broadcasts the input box and clears it
func (c *TesterController) Send() {
	c.prevText = c.view.InputText()
	c.receive(c.prevText, fromLocal)
	c.view.SetInputText("")
}

// Previous restores the last sent text into the input box
func (c *TesterController) Previous() {
	c.view.SetInputText(c.prevText)
}

func (c *TesterController) SendTestMessage() {
	c.prevText = TestMessage
	c.receive(TestMessage, fromLocal)
}

func (c *TesterController) Exit() {
	c.view.ConfirmExit(func(yes bool) {
		if !yes {
			return
		}
		c.Shutdown(context.Background())
		c.view.Quit()
	})
}

// Shutdown stops the relay subscription and the server
func (c *TesterController) Shutdown(ctx context.Context) {
	c.stopOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		if err := c.server.Shutdown(ctx); err != nil {
			c.logger.Error("TesterController", err, nil)
		}
	})
}
