// Package realtime bridges Postgres NOTIFY events to in-process subscribers.
// Repositories call pg_notify inside their write transactions; the listener
// fans the notifications out to whoever holds a subscription (the admin SSE
// stream). Subscribers treat every event as "invalidate and refetch".
package realtime

import "sync"

// Event is one change notification from the database.
type Event struct {
	Channel string `json:"channel"`
	Payload string `json:"payload"`
}

// Hub fans events out to subscribers. Slow subscribers drop events rather
// than block the listener.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[chan Event]struct{}{}}
}

// Subscribe registers a new subscriber and returns its channel plus an
// unsubscribe func.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber, dropping it for any
// subscriber whose buffer is full.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
