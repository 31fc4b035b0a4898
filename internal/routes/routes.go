package routes

import (
	"user-directory-api/internal/handlers"
	"user-directory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the router around an explicitly wired handler set.
func SetupRoutes(h *handlers.Handlers) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", h.Health)

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/register", h.Register)
		api.GET("/messages", h.GetLanguages)
		api.GET("/messages/:key", h.GetMessage)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// User endpoints
		protectedRoutes.GET("/users", h.ListUsers)
		protectedRoutes.GET("/users/:id", h.GetUser)
		protectedRoutes.PUT("/users/:id", h.UpdateUser)
		protectedRoutes.DELETE("/users/:id", h.DeleteUser)

		// Cache diagnostics
		protectedRoutes.GET("/cache/stats", h.CacheStats)
		protectedRoutes.GET("/cache/users/top", h.CacheTopUsers)
		protectedRoutes.GET("/cache/users/export", h.CacheExportUsers)
		protectedRoutes.POST("/cache/reset-metrics", h.ResetCacheMetrics)
		protectedRoutes.POST("/cache/flush", h.FlushCaches)
		protectedRoutes.DELETE("/cache/messages/:lang", h.ClearMessageLanguage)
	}

	// WebSocket endpoint (token via query param)
	ginRouter.GET("/ws", middleware.JWTAuthMiddleware(), h.WebSocket)

	return ginRouter
}
