package cache

import "time"

// entry is the unit of storage: the cached value plus access bookkeeping.
// The key is kept alongside because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key            K
	value          V
	accessCount    int64
	lastAccessedAt time.Time
	createdAt      time.Time
}
