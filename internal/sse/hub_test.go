package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
)

const waitFor = time.Second

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	itemsOnly := hub.Register([]string{domain.EventTypeItemsChanged})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, waitFor, 10*time.Millisecond)

	hub.Broadcast(domain.EventTypeCraftCompleted, "craft")
	hub.Broadcast(domain.EventTypeItemsChanged, "items")

	assert.Equal(t, domain.EventTypeCraftCompleted, receive(t, all).Type)
	assert.Equal(t, domain.EventTypeItemsChanged, receive(t, all).Type)

	got := receive(t, itemsOnly)
	assert.Equal(t, domain.EventTypeItemsChanged, got.Type)
	assert.Equal(t, "items", got.Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

	hub.Unregister(c.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, waitFor, 10*time.Millisecond)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()
	assert.NotPanics(t, hub.Stop)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "items.changed", Timestamp: 1})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: items.changed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, parseTypes(""))
	assert.Equal(t, []string{"a", "b"}, parseTypes("a, ,b"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewInventoryChangedEvent(4, 2)))

	got := receive(t, c)
	assert.Equal(t, domain.EventTypeInventoryChanged, got.Type)
	assert.Equal(t, domain.InventoryChangedPayload{ItemID: 4, Amount: 2}, got.Payload)
}

func TestHandler_StreamsConnectedEvent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=items.changed", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	_, err = reader.ReadString('\n') // id line
	require.NoError(t, err)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)
}
