package cache

import (
	"fmt"
	"math"
	"time"
)

// Fixed per-entry byte assumptions for the memory estimate. Deliberately a
// rough order-of-magnitude indicator, not an exact measurement.
const (
	avgKeyBytes           = 50
	avgValueBytes         = 100
	avgEntryOverheadBytes = 50
)

// Metrics is a point-in-time snapshot of a cache's counters and derived
// statistics. Downstream diagnostic endpoints render it as JSON directly.
type Metrics struct {
	Hits           int64      `json:"hits"`
	Misses         int64      `json:"misses"`
	TotalRequests  int64      `json:"totalRequests"`
	HitRate        float64    `json:"hitRate"`
	Size           int        `json:"size"`
	MaxSize        int        `json:"maxSize"`
	MemoryEstimate string     `json:"memoryEstimate"`
	OldestEntry    *time.Time `json:"oldestEntry,omitempty"`
	NewestEntry    *time.Time `json:"newestEntry,omitempty"`
}

// hitRate returns hits/total as a percentage rounded to 2 decimal places,
// or 0 when no requests have been made.
func hitRate(hits, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(hits)/float64(total)*100*100) / 100
}

// estimateMemory approximates the footprint of size entries using the fixed
// per-entry byte assumptions and formats it with the largest applicable unit.
func estimateMemory(size int) string {
	return formatBytes(float64(size) * (avgKeyBytes + avgValueBytes + avgEntryOverheadBytes))
}

func formatBytes(n float64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%.2f Bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", n/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", n/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", n/(1024*1024*1024))
	}
}
