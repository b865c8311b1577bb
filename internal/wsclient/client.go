// Package wsclient is the WebSocket connection used by MonitorScreen. It
// owns one connection at a time and reports lifecycle changes through
// callbacks that run on the connection's reader goroutine.
package wsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"monitorscreen/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 5 * time.Second
	writeWait        = 5 * time.Second
)

var ErrNotConnected = errors.New("wsclient: not connected")

type State int

const (
	Unconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Unconnected:
		return "unconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Handlers are invoked from the reader goroutine. Any of them may be nil.
type Handlers struct {
	OnConnected    func()
	OnDisconnected func()
	OnText         func(message string)
}

type Client struct {
	dialer *websocket.Dialer
	logger logger.Logger

	mu       sync.Mutex
	handlers Handlers
	state    State
	conn     *websocket.Conn
	cancel   context.CancelFunc

	writeMu sync.Mutex
}

func New(log logger.Logger) *Client {
	return &Client{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: log,
	}
}

func (c *Client) SetHandlers(h Handlers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = h
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Open starts connecting to uri in the background. It does nothing unless
// the client is unconnected.
func (c *Client) Open(ctx context.Context, uri string) {
	c.mu.Lock()
	if c.state != Unconnected {
		c.mu.Unlock()
		return
	}
	dialCtx, cancel := context.WithCancel(ctx)
	c.state = Connecting
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(dialCtx, uri)
}

func (c *Client) run(ctx context.Context, uri string) {
	conn, _, err := c.dialer.DialContext(ctx, uri, nil)
	if err != nil {
		c.mu.Lock()
		c.state = Unconnected
		c.cancel = nil
		c.mu.Unlock()
		c.logger.Debug("WSClient", "dial failed", map[string]interface{}{
			"uri":   uri,
			"error": err.Error(),
		})
		return
	}

	c.mu.Lock()
	if ctx.Err() != nil {
		// Closed while the handshake was finishing
		c.state = Unconnected
		c.cancel = nil
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.conn = conn
	c.state = Connected
	handlers := c.handlers
	c.mu.Unlock()

	c.logger.Info("WSClient", "connected", map[string]interface{}{"uri": uri})
	if handlers.OnConnected != nil {
		handlers.OnConnected()
	}

	c.readLoop(conn, handlers)

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.state = Unconnected
	c.cancel = nil
	handlers = c.handlers
	c.mu.Unlock()

	conn.Close()
	c.logger.Info("WSClient", "disconnected", map[string]interface{}{"uri": uri})
	if handlers.OnDisconnected != nil {
		handlers.OnDisconnected()
	}
}

func (c *Client) readLoop(conn *websocket.Conn, handlers Handlers) {
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("WSClient", "read ended", map[string]interface{}{"error": err.Error()})
			}
			return
		}
		if typ != websocket.TextMessage || handlers.OnText == nil {
			continue
		}
		handlers.OnText(string(data))
	}
}

func (c *Client) SendText(message string) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("setting write deadline: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return fmt.Errorf("sending text: %w", err)
	}
	return nil
}

// Close aborts a pending dial or closes the open connection with a normal
// closure frame. OnDisconnected fires once the reader notices.
func (c *Client) Close() error {
	c.mu.Lock()
	cancel := c.cancel
	conn := c.conn
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	err := conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.writeMu.Unlock()

	conn.Close()
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		return fmt.Errorf("closing connection: %w", err)
	}
	return nil
}

func (c *Client) Shutdown() {
	if err := c.Close(); err != nil {
		c.logger.Error("WSClient", err, nil)
	}
}
