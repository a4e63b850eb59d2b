package realtime

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Channels the repositories notify on.
const (
	ChannelOrders   = "orders_changed"
	ChannelSettings = "settings_changed"
)

// Listener holds one dedicated connection on LISTEN and publishes every
// notification to the hub. It reconnects with a short backoff if the
// connection drops.
type Listener struct {
	Pool *pgxpool.Pool
	Hub  *Hub
}

func NewListener(pool *pgxpool.Pool, hub *Hub) *Listener {
	return &Listener{Pool: pool, Hub: hub}
}

// Run blocks until ctx is cancelled. Call it in its own goroutine.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("realtime: listener error: %v (reconnecting)", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, channel := range []string{ChannelOrders, ChannelSettings} {
		if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
			return err
		}
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.Hub.Publish(Event{Channel: notification.Channel, Payload: notification.Payload})
	}
}
