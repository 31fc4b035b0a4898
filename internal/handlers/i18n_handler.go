package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMessage handles GET /api/messages/:key
// Resolves a localized message. Language comes from the lang query param,
// the token's locale or Accept-Language; every other query param is an
// interpolation argument.
func (h *Handlers) GetMessage(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message key is required"})
		return
	}

	lang := h.requestLanguage(c)

	var args map[string]any
	for name, values := range c.Request.URL.Query() {
		if name == "lang" || len(values) == 0 {
			continue
		}
		if args == nil {
			args = make(map[string]any)
		}
		args[name] = values[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"key":      key,
		"language": lang,
		"message":  h.translator.TranslateWithArgs(lang, key, args),
	})
}

// GetLanguages handles GET /api/messages
// Lists the language codes the catalog was loaded with.
func (h *Handlers) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": h.translator.Languages(),
		"default":   h.translator.DefaultLanguage(),
	})
}
