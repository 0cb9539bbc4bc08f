package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()

	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(b)

	h.Publish("one")
	assert.Equal(t, "one", <-a)
	assert.Equal(t, "one", <-b)

	h.Unsubscribe(a)
	h.Publish("two")
	assert.Equal(t, "two", <-b)
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// overflow the buffer; Publish must not block
	for i := 0; i < 100; i++ {
		h.Publish("x")
	}
	assert.Equal(t, "x", <-ch)
}

func TestMakeEnvelope(t *testing.T) {
	raw := Make(TypeJobCreated, map[string]any{"id": "abc"})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypeJobCreated, e.Type)
	assert.False(t, e.At.IsZero())
	assert.JSONEq(t, `{"id":"abc"}`, string(e.Data))

	raw = Make("ping", nil)
	var ping Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ping))
	assert.Empty(t, ping.Data)
}
