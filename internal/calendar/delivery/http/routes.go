package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/middleware"
)

// RegisterRoutes maps the calendar endpoints. Every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar", mw.Auth(), mw.RateLimit())
	{
		cal.GET("/items", h.Items)
		cal.GET("/events", h.Events)
		cal.POST("/events", h.CreateEvent)
		cal.DELETE("/events/:eventId", h.DeleteEvent)
	}
}
