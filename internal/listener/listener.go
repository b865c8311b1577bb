// Package listener is a headless client: it connects, announces itself and
// logs whatever the server sends until the context ends, redialling when
// the connection drops.
package listener

import (
	"context"
	"time"

	"monitorscreen/internal/logger"
	"monitorscreen/internal/wsclient"
)

const (
	greetingPrefix = "Connected to "
	RetryInterval  = time.Second
)

type Connection interface {
	SetHandlers(h wsclient.Handlers)
	State() wsclient.State
	Open(ctx context.Context, uri string)
	SendText(message string) error
	Close() error
}

type Listener struct {
	uri    string
	conn   Connection
	logger logger.Logger
	retry  time.Duration

	// Messages, when set, receives every text frame in addition to the log
	Messages chan<- string
}

func New(uri string, conn Connection, log logger.Logger) *Listener {
	return &Listener{uri: uri, conn: conn, logger: log, retry: RetryInterval}
}

// Run blocks until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	l.conn.SetHandlers(wsclient.Handlers{
		OnConnected: func() {
			if err := l.conn.SendText(greetingPrefix + l.uri); err != nil {
				l.logger.Error("Listener", err, map[string]interface{}{"uri": l.uri})
			}
		},
		OnDisconnected: func() {
			l.logger.Warning("Listener", "connection lost", map[string]interface{}{"uri": l.uri})
		},
		OnText: func(message string) {
			l.logger.Info("Listener", message, map[string]interface{}{"uri": l.uri})
			if l.Messages == nil {
				return
			}
			select {
			case l.Messages <- message:
			case <-ctx.Done():
			}
		},
	})

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	l.conn.Open(ctx, l.uri)
	for {
		select {
		case <-ctx.Done():
			return l.conn.Close()
		case <-ticker.C:
			if l.conn.State() == wsclient.Unconnected {
				l.conn.Open(ctx, l.uri)
			}
		}
	}
}
