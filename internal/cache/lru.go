package cache

import (
	"container/list"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrInvalidCapacity is returned when constructing a cache with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("cache capacity must be a positive integer")

// LRU is a fixed-capacity cache with least-recently-used eviction.
//
// A map gives O(1) key lookup and a doubly-linked list maintains recency
// ordering: Front = least recently used, Back = most recently used. Every
// successful Get or Set moves the touched entry to the back, so the entry
// evicted at capacity is always the one at the front.
type LRU[K comparable, V any] struct {
	// If muPtr is nil, the cache is NOT goroutine-safe.
	// If muPtr is non-nil, it guards all operations. Note that Get takes
	// the write lock: promoting an entry is a write to shared structure.
	muPtr *sync.RWMutex

	capacity int
	items    map[K]*list.Element
	order    *list.List

	hits          int64
	misses        int64
	totalRequests int64
}

// Options controls construction of an LRU cache.
type Options struct {
	// ConcurrencySafe controls whether operations are guarded by a RWMutex.
	// If false, the cache is not safe for concurrent use and may be faster
	// in single-threaded contexts.
	ConcurrencySafe bool
}

// NewLRU constructs an LRU cache holding at most capacity entries.
// A capacity of zero or less is a configuration error.
func NewLRU[K comparable, V any](capacity int, opts Options) (*LRU[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, capacity)
	}
	var mu *sync.RWMutex
	if opts.ConcurrencySafe {
		mu = &sync.RWMutex{}
	}
	return &LRU[K, V]{
		muPtr:    mu,
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

func (c *LRU[K, V]) lockR() func() {
	if c.muPtr == nil {
		return func() {}
	}
	c.muPtr.RLock()
	return c.muPtr.RUnlock
}

func (c *LRU[K, V]) lockW() func() {
	if c.muPtr == nil {
		return func() {}
	}
	c.muPtr.Lock()
	return c.muPtr.Unlock
}

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

// Get implements Cache.Get. A hit increments the entry's access count,
// refreshes its last-accessed time and promotes it to most-recently-used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	unlock := c.lockW()
	defer unlock()

	c.totalRequests++

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}

	e := el.Value.(*entry[K, V])
	e.accessCount++
	e.lastAccessedAt = now()
	c.order.MoveToBack(el)
	c.hits++
	return e.value, true
}

// Set implements Cache.Set. Writing to an existing key counts as use and
// promotes it; inserting a new key at capacity evicts the LRU entry first.
func (c *LRU[K, V]) Set(key K, value V) {
	unlock := c.lockW()
	defer unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		e.value = value
		e.accessCount++
		e.lastAccessedAt = now()
		c.order.MoveToBack(el)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldestLocked()
	}

	ts := now()
	el := c.order.PushBack(&entry[K, V]{
		key:            key,
		value:          value,
		accessCount:    1,
		lastAccessedAt: ts,
		createdAt:      ts,
	})
	c.items[key] = el
}

// evictOldestLocked removes the entry at the front of the recency list.
func (c *LRU[K, V]) evictOldestLocked() {
	el := c.order.Front()
	if el == nil {
		return
	}
	e := el.Value.(*entry[K, V])
	c.order.Remove(el)
	delete(c.items, e.key)
}

// Has implements Cache.Has. Pure membership check: no metrics effect,
// no reordering.
func (c *LRU[K, V]) Has(key K) bool {
	unlock := c.lockR()
	defer unlock()
	_, ok := c.items[key]
	return ok
}

// Delete implements Cache.Delete. No metrics effect.
func (c *LRU[K, V]) Delete(key K) bool {
	unlock := c.lockW()
	defer unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.Remove(el)
	delete(c.items, key)
	return true
}

// Clear implements Cache.Clear. Counters survive so hit-rate statistics
// remain meaningful across a manual flush.
func (c *LRU[K, V]) Clear() {
	unlock := c.lockW()
	defer unlock()
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Len implements Cache.Len.
func (c *LRU[K, V]) Len() int {
	unlock := c.lockR()
	defer unlock()
	return len(c.items)
}

// Capacity returns the fixed maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// ResetMetrics implements Cache.ResetMetrics.
func (c *LRU[K, V]) ResetMetrics() {
	unlock := c.lockW()
	defer unlock()
	c.hits = 0
	c.misses = 0
	c.totalRequests = 0
}

// Metrics implements Cache.Metrics.
func (c *LRU[K, V]) Metrics() Metrics {
	unlock := c.lockR()
	defer unlock()

	m := Metrics{
		Hits:           c.hits,
		Misses:         c.misses,
		TotalRequests:  c.totalRequests,
		HitRate:        hitRate(c.hits, c.totalRequests),
		Size:           len(c.items),
		MaxSize:        c.capacity,
		MemoryEstimate: estimateMemory(len(c.items)),
	}

	// Oldest/newest creation times across current entries; absent when empty.
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		if m.OldestEntry == nil || e.createdAt.Before(*m.OldestEntry) {
			ts := e.createdAt
			m.OldestEntry = &ts
		}
		if m.NewestEntry == nil || e.createdAt.After(*m.NewestEntry) {
			ts := e.createdAt
			m.NewestEntry = &ts
		}
	}
	return m
}

// AccessStat is one row of a most/least-accessed ranking.
type AccessStat[K comparable, V any] struct {
	Key         K     `json:"key"`
	Value       V     `json:"value"`
	AccessCount int64 `json:"accessCount"`
}

// MostAccessed returns up to limit entries ordered by descending access
// count. Ties keep recency order, least-recently-used first.
func (c *LRU[K, V]) MostAccessed(limit int) []AccessStat[K, V] {
	return c.rankByAccess(limit, func(a, b int64) bool { return a > b })
}

// LeastAccessed returns up to limit entries ordered by ascending access
// count. Ties keep recency order, least-recently-used first.
func (c *LRU[K, V]) LeastAccessed(limit int) []AccessStat[K, V] {
	return c.rankByAccess(limit, func(a, b int64) bool { return a < b })
}

func (c *LRU[K, V]) rankByAccess(limit int, less func(a, b int64) bool) []AccessStat[K, V] {
	unlock := c.lockR()
	defer unlock()

	stats := make([]AccessStat[K, V], 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		stats = append(stats, AccessStat[K, V]{
			Key:         e.key,
			Value:       e.value,
			AccessCount: e.accessCount,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return less(stats[i].AccessCount, stats[j].AccessCount)
	})
	if limit < 0 {
		limit = 0
	}
	if limit < len(stats) {
		stats = stats[:limit]
	}
	return stats
}

// ExportedEntry is one row of a full diagnostic dump.
type ExportedEntry[K comparable, V any] struct {
	Key            K         `json:"key"`
	Value          V         `json:"value"`
	AccessCount    int64     `json:"accessCount"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
	CreatedAt      time.Time `json:"createdAt"`
	AgeInMinutes   float64   `json:"ageInMinutes"`
}

// Export returns a non-destructive dump of every entry in recency order,
// least-recently-used first.
func (c *LRU[K, V]) Export() []ExportedEntry[K, V] {
	unlock := c.lockR()
	defer unlock()

	nowTs := now()
	out := make([]ExportedEntry[K, V], 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[K, V])
		out = append(out, ExportedEntry[K, V]{
			Key:            e.key,
			Value:          e.value,
			AccessCount:    e.accessCount,
			LastAccessedAt: e.lastAccessedAt,
			CreatedAt:      e.createdAt,
			AgeInMinutes:   nowTs.Sub(e.createdAt).Minutes(),
		})
	}
	return out
}

// Ensure LRU implements Cache at compile time.
var _ Cache[string, any] = (*LRU[string, any])(nil)
