package listener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"monitorscreen/internal/logger"
	"monitorscreen/internal/wsclient"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_GreetsAndForwardsMessages(t *testing.T) {
	greetings := make(chan string, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		greetings <- string(msg)
		conn.WriteMessage(websocket.TextMessage, []byte(`{"name":"rpm","value":"42"}`))
		conn.ReadMessage()
	}))
	defer srv.Close()

	uri := "ws" + strings.TrimPrefix(srv.URL, "http")
	messages := make(chan string, 1)

	l := New(uri, wsclient.New(logger.NoOp{}), logger.NoOp{})
	l.Messages = messages

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	select {
	case g := <-greetings:
		assert.Equal(t, "Connected to "+uri, g)
	case <-time.After(2 * time.Second):
		t.Fatal("no greeting")
	}

	select {
	case m := <-messages:
		assert.Equal(t, `{"name":"rpm","value":"42"}`, m)
	case <-time.After(2 * time.Second):
		t.Fatal("no message forwarded")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// stubConn records Open calls without touching the network
type stubConn struct {
	opens chan string
}

func (s *stubConn) SetHandlers(wsclient.Handlers) {}

func (s *stubConn) State() wsclient.State { return wsclient.Unconnected }

func (s *stubConn) SendText(string) error { return wsclient.ErrNotConnected }

func (s *stubConn) Close() error { return nil }

func (s *stubConn) Open(_ context.Context, uri string) {
	select {
	case s.opens <- uri:
	default:
	}
}

func TestListener_RedialsWhileUnconnected(t *testing.T) {
	conn := &stubConn{opens: make(chan string, 16)}
	l := New("ws://example.invalid", conn, logger.NoOp{})
	l.retry = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case uri := <-conn.opens:
			assert.Equal(t, "ws://example.invalid", uri)
		case <-time.After(time.Second):
			t.Fatal("listener stopped redialling")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
