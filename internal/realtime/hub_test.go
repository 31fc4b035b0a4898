package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	received [][]byte
}

func (c *fakeClient) Send(message []byte) bool {
	c.received = append(c.received, message)
	return true
}

func (c *fakeClient) Close() {}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	h := NewHub()
	a := &fakeClient{}
	b := &fakeClient{}

	h.Register("u-1", a)
	h.Register("u-2", b)
	require.Equal(t, 2, h.ClientCount())

	h.Broadcast(Event{Type: "user_updated", UserID: "u-9"})
	require.Len(t, a.received, 1)
	require.Len(t, b.received, 1)
	require.Contains(t, string(a.received[0]), "user_updated")
	require.Contains(t, string(a.received[0]), "u-9")

	h.Unregister("u-1", a)
	require.Equal(t, 1, h.ClientCount())

	h.Broadcast(Event{Type: "user_deleted", UserID: "u-9"})
	require.Len(t, a.received, 1, "unregistered client must not receive events")
	require.Len(t, b.received, 2)
}

func TestHub_UnregisterUnknownIsSafe(t *testing.T) {
	h := NewHub()
	h.Unregister("nope", &fakeClient{})
	require.Zero(t, h.ClientCount())
}
