// Package bridge mirrors WebSocketTest broadcasts onto a NATS subject so
// other processes can feed or observe the test server.
package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Relay publishes outgoing messages and delivers messages published by others
type Relay interface {
	Publish(ctx context.Context, message string) error
	Subscribe(handler func(message string)) (cancel func(), err error)
	Close() error
}

type NATSRelay struct {
	conn    *nats.Conn
	subject string
}

// NewNATSRelay connects with automatic reconnection. NoEcho keeps the relay
// from receiving its own publications.
func NewNATSRelay(url, subject string, opts ...nats.Option) (*NATSRelay, error) {
	defaults := []nats.Option{
		nats.Name("websockettest"),
		nats.NoEcho(),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSRelay{conn: nc, subject: subject}, nil
}

func (r *NATSRelay) Subject() string {
	return r.subject
}

func (r *NATSRelay) Publish(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.conn.Publish(r.subject, []byte(message)); err != nil {
		return fmt.Errorf("publishing to %s: %w", r.subject, err)
	}
	return nil
}

func (r *NATSRelay) Subscribe(handler func(message string)) (func(), error) {
	sub, err := r.conn.Subscribe(r.subject, func(msg *nats.Msg) {
		handler(string(msg.Data))
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", r.subject, err)
	}
	// Make sure the interest is registered before returning
	if err := r.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return nil, fmt.Errorf("flushing subscription: %w", err)
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

func (r *NATSRelay) Close() error {
	r.conn.Close()
	return nil
}

// NoopRelay is used when no NATS URL is configured
type NoopRelay struct{}

func (NoopRelay) Publish(ctx context.Context, message string) error { return nil }

func (NoopRelay) Subscribe(handler func(message string)) (func(), error) {
	return func() {}, nil
}

func (NoopRelay) Close() error { return nil }
