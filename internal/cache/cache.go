package cache

// Cache defines a bounded key-value cache API with LRU eviction and
// hit/miss accounting. Implementations may or may not be goroutine-safe
// depending on configuration.
type Cache[K comparable, V any] interface {
	// Get returns the value and whether it was present. A hit promotes the
	// entry to most-recently-used and updates its access bookkeeping.
	Get(key K) (V, bool)

	// Set stores the value, evicting the least-recently-used entry first
	// when inserting a new key at capacity.
	Set(key K, value V)

	// Has reports whether a key is present without touching recency
	// ordering or the hit/miss counters.
	Has(key K) bool

	// Delete removes a key if present and reports whether it was removed.
	Delete(key K) bool

	// Clear removes all entries. Hit/miss counters are preserved so that
	// effectiveness statistics survive a manual flush.
	Clear()

	// Len returns the number of items currently stored.
	Len() int

	// Metrics returns a snapshot of the cache's counters and derived stats.
	Metrics() Metrics

	// ResetMetrics zeroes the hit/miss/request counters. Stored entries
	// are untouched.
	ResetMetrics()
}
