package usercache

import (
	"testing"

	"user-directory-api/internal/cache"
	"user-directory-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUserCache_RoundTrip(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	_, ok := c.Get("u-1")
	require.False(t, ok)

	c.Set("u-1", models.User{ID: "u-1", Username: "alice"})
	got, ok := c.Get("u-1")
	require.True(t, ok)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, 1, c.Len())
}

func TestUserCache_Invalidate(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	c.Set("u-1", models.User{ID: "u-1", Username: "alice"})
	require.True(t, c.Invalidate("u-1"))
	require.False(t, c.Invalidate("u-1"))

	_, ok := c.Get("u-1")
	require.False(t, ok)
}

func TestUserCache_EvictsOldestIdentity(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	c.Set("u-1", models.User{ID: "u-1"})
	c.Set("u-2", models.User{ID: "u-2"})
	_, _ = c.Get("u-1") // keep u-1 warm
	c.Set("u-3", models.User{ID: "u-3"})

	_, ok := c.Get("u-2")
	require.False(t, ok, "u-2 was least recently used and should be evicted")
	_, ok = c.Get("u-1")
	require.True(t, ok)
}

func TestUserCache_MetricsAndDiagnostics(t *testing.T) {
	c, err := New(10)
	require.NoError(t, err)

	c.Set("u-1", models.User{ID: "u-1", Username: "alice"})
	_, _ = c.Get("u-1")
	_, _ = c.Get("u-missing")

	m := c.Metrics()
	require.Equal(t, int64(1), m.Hits)
	require.Equal(t, int64(1), m.Misses)
	require.Equal(t, 10, m.MaxSize)

	top := c.MostAccessed(5)
	require.Len(t, top, 1)
	require.Equal(t, "u-1", top[0].Key)

	rows := c.Export()
	require.Len(t, rows, 1)
	require.Equal(t, "alice", rows[0].Value.Username)

	c.ResetMetrics()
	require.Zero(t, c.Metrics().TotalRequests)
	require.Equal(t, 1, c.Len())
}

func TestUserCache_RejectsInvalidCapacity(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, cache.ErrInvalidCapacity)
}
