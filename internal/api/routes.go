package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Generation Wizard Lifecycle ---
	// Everything is scoped to one wizard session.
	sessionGroup := router.Group("/session")
	{
		sessionGroup.POST("", h.CreateSession)                     // Start a new wizard session
		sessionGroup.GET("/:id", h.GetSession)                     // Poll state, progress and notices
		sessionGroup.POST("/:id/select", h.SelectProject)          // Choose the project archetype
		sessionGroup.POST("/:id/theme", h.SubmitTheme)             // Submit the store theme, starts generation
		sessionGroup.GET("/:id/tree", h.GetTree)                   // File tree of the assembled project
		sessionGroup.GET("/:id/download", h.Download)              // Download the project archive
		sessionGroup.POST("/:id/notice/dismiss", h.DismissNotice)  // Manually dismiss the visible notice
		sessionGroup.POST("/:id/reset", h.ResetSession)            // Start over, discarding all state
	}

	// --- Simple Health Check ---
	// Basic health endpoint to check if the service is running
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
