package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheStats handles GET /api/cache/stats
// Returns the metrics snapshots for both caches.
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"users":        h.users.Metrics(),
		"translations": h.translator.Metrics(),
	})
}

// CacheTopUsers handles GET /api/cache/users/top
// Returns the most-accessed cached identities. Query param: limit (default 10).
func (h *Handlers) CacheTopUsers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	rows := h.users.MostAccessed(limit)
	c.JSON(http.StatusOK, gin.H{
		"entries": rows,
		"count":   len(rows),
	})
}

// CacheExportUsers handles GET /api/cache/users/export
// Full diagnostic dump of the identity cache, least-recently-used first.
func (h *Handlers) CacheExportUsers(c *gin.Context) {
	rows := h.users.Export()
	c.JSON(http.StatusOK, gin.H{
		"entries": rows,
		"count":   len(rows),
	})
}

// ResetCacheMetrics handles POST /api/cache/reset-metrics
// Zeroes the hit/miss counters on both caches; stored entries are untouched.
func (h *Handlers) ResetCacheMetrics(c *gin.Context) {
	h.users.ResetMetrics()
	h.translator.ResetMetrics()
	c.JSON(http.StatusOK, gin.H{"message": "Cache metrics reset"})
}

// FlushCaches handles POST /api/cache/flush
// Clears both caches. Hit/miss statistics deliberately survive the flush.
func (h *Handlers) FlushCaches(c *gin.Context) {
	h.users.Clear()
	h.translator.ClearCache()
	c.JSON(http.StatusOK, gin.H{"message": "Caches flushed"})
}

// ClearMessageLanguage handles DELETE /api/cache/messages/:lang
// Drops every cached translation for one language, typically after its
// catalog file changed.
func (h *Handlers) ClearMessageLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Language code is required"})
		return
	}
	removed := h.translator.ClearLanguage(lang)
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"removed":  removed,
	})
}
