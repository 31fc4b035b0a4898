package handlers

import (
	"net/http"
	"strings"

	"user-directory-api/internal/i18n"
	"user-directory-api/internal/realtime"
	"user-directory-api/internal/usercache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers carries the service dependencies for the HTTP layer. The caches
// are constructed once at startup and passed in here; handlers do
// cache-aside reads and explicit invalidation, the caches never reach out
// to the database or the message catalog themselves.
type Handlers struct {
	db         *gorm.DB
	users      *usercache.UserCache
	translator *i18n.Translator
	hub        *realtime.Hub
}

// New wires the handler set.
func New(db *gorm.DB, users *usercache.UserCache, translator *i18n.Translator, hub *realtime.Hub) *Handlers {
	return &Handlers{
		db:         db,
		users:      users,
		translator: translator,
		hub:        hub,
	}
}

// Health handles GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"cachedUsers":        h.users.Len(),
		"cachedTranslations": h.translator.CacheLen(),
		"availableLanguages": h.translator.Languages(),
	})
}

// requestLanguage picks the response language: explicit lang query param,
// then the token's locale claim, then the first Accept-Language tag, then
// the catalog default.
func (h *Handlers) requestLanguage(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if locale := c.GetString("locale"); locale != "" {
		return locale
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		first := strings.TrimSpace(strings.Split(header, ",")[0])
		if idx := strings.IndexAny(first, "-;"); idx > 0 {
			first = first[:idx]
		}
		if first != "" {
			return strings.ToLower(first)
		}
	}
	return h.translator.DefaultLanguage()
}
