package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelA()
	defer cancelB()

	hub.Publish(Event{Channel: ChannelOrders, Payload: "o1"})

	assert.Equal(t, Event{Channel: ChannelOrders, Payload: "o1"}, <-a)
	assert.Equal(t, Event{Channel: ChannelOrders, Payload: "o1"}, <-b)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	hub.Publish(Event{Channel: ChannelSettings, Payload: "s1"})
	cancel() // double cancel is safe
}

func TestHubDropsEventsForFullSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		hub.Publish(Event{Channel: ChannelOrders, Payload: "x"})
	}

	// buffer is 16; the rest were dropped, and Publish never blocked
	require.Len(t, ch, 16)
}
