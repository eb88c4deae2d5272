package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every item route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth(), mw.RateLimit())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/toggle", h.Toggle)
	}
}
