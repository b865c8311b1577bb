// Package hub is the WebSocketTest broadcast server. Every text frame a
// client sends is reported through Handlers.OnText; Broadcast fans a
// message out to every connected client.
package hub

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"monitorscreen/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendQueueSize  = 256
	maxMessageSize = 1 << 20
)

// Handlers may be nil. They run on the connection's reader goroutine.
type Handlers struct {
	OnConnect    func(clientID string)
	OnDisconnect func(clientID string)
	OnText       func(clientID, message string)
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) stop() {
	c.once.Do(func() { close(c.send) })
}

type Hub struct {
	logger   logger.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	clients  map[string]*client
	handlers Handlers

	server   *http.Server
	listener net.Listener
}

func New(log logger.Logger) *Hub {
	return &Hub{
		logger: log,
		upgrader: websocket.Upgrader{
			// Local test tool: accept any origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

func (h *Hub) SetHandlers(handlers Handlers) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers = handlers
}

// Start binds addr synchronously and serves in the background.
func (h *Hub) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	h.mu.Lock()
	h.listener = ln
	h.server = &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := h.server
	h.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("Hub", err, map[string]interface{}{"addr": addr})
		}
	}()

	h.logger.Info("Hub", "listening", map[string]interface{}{"addr": ln.Addr().String()})
	return nil
}

// Addr is nil until Start succeeds
func (h *Hub) Addr() net.Addr {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// ServeHTTP upgrades any request path
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warning("Hub", "upgrade failed", map[string]interface{}{
			"remote": r.RemoteAddr,
			"error":  err.Error(),
		})
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	handlers := h.handlers
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Hub", "client connected", map[string]interface{}{
		"client":  c.id,
		"remote":  conn.RemoteAddr().String(),
		"clients": count,
	})
	if handlers.OnConnect != nil {
		handlers.OnConnect(c.id)
	}

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		typ, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("Hub", "read error", map[string]interface{}{
					"client": c.id,
					"error":  err.Error(),
				})
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		h.mu.RLock()
		onText := h.handlers.OnText
		h.mu.RUnlock()
		if onText != nil {
			onText(c.id, string(msg))
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, present := h.clients[c.id]
	delete(h.clients, c.id)
	handlers := h.handlers
	count := len(h.clients)
	h.mu.Unlock()

	c.stop()
	c.conn.Close()
	if !present {
		return
	}

	h.logger.Info("Hub", "client disconnected", map[string]interface{}{
		"client":  c.id,
		"clients": count,
	})
	if handlers.OnDisconnect != nil {
		handlers.OnDisconnect(c.id)
	}
}

// Broadcast queues message for every connected client and returns how many
// received it. Clients that cannot keep up are dropped.
func (h *Hub) Broadcast(message string) int {
	payload := []byte(message)

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for id, c := range h.clients {
		select {
		case c.send <- payload:
			delivered++
		default:
			h.logger.Warning("Hub", "dropping slow client", map[string]interface{}{"client": id})
			delete(h.clients, id)
			c.stop()
		}
	}
	return delivered
}

// Clients returns the ids of connected clients
func (h *Hub) Clients() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown stops accepting connections and closes every client
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	srv := h.server
	for id, c := range h.clients {
		delete(h.clients, id)
		c.stop()
	}
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down hub: %w", err)
	}
	return nil
}
