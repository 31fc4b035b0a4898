// Package usercache keeps hot user records out of the database behind a
// bounded LRU cache keyed by user ID, one entry per identity.
package usercache

import (
	"user-directory-api/internal/cache"
	"user-directory-api/internal/models"
)

// DefaultCapacity bounds the number of cached identities.
const DefaultCapacity = 1000

// UserCache is the identity facade over the generic LRU engine. Callers do
// cache-aside: read here first, fall back to the database on a miss and
// push the record back via Set. The cache itself never touches the store.
type UserCache struct {
	lru *cache.LRU[string, models.User]
}

// New constructs a user cache holding at most capacity records.
// The cache is safe for concurrent use from request handlers.
func New(capacity int) (*UserCache, error) {
	lru, err := cache.NewLRU[string, models.User](capacity, cache.Options{ConcurrencySafe: true})
	if err != nil {
		return nil, err
	}
	return &UserCache{lru: lru}, nil
}

// Get returns the cached record for id, if present.
func (c *UserCache) Get(id string) (models.User, bool) {
	return c.lru.Get(id)
}

// Set stores (or refreshes) the record for id.
func (c *UserCache) Set(id string, user models.User) {
	c.lru.Set(id, user)
}

// Invalidate drops the record for id, typically after an update or delete
// against the backing store.
func (c *UserCache) Invalidate(id string) bool {
	return c.lru.Delete(id)
}

// Clear flushes all records. Hit/miss statistics are preserved.
func (c *UserCache) Clear() {
	c.lru.Clear()
}

// Len returns the number of cached records.
func (c *UserCache) Len() int {
	return c.lru.Len()
}

// Metrics returns the engine's metrics snapshot.
func (c *UserCache) Metrics() cache.Metrics {
	return c.lru.Metrics()
}

// ResetMetrics zeroes the hit/miss counters.
func (c *UserCache) ResetMetrics() {
	c.lru.ResetMetrics()
}

// MostAccessed returns the top-limit records by access count.
func (c *UserCache) MostAccessed(limit int) []cache.AccessStat[string, models.User] {
	return c.lru.MostAccessed(limit)
}

// Export returns the full diagnostic dump.
func (c *UserCache) Export() []cache.ExportedEntry[string, models.User] {
	return c.lru.Export()
}
