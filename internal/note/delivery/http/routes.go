package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes", mw.Auth(), mw.RateLimit())
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Detail)
		notes.PATCH("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
		notes.POST("/:id/checklist", h.CheckItem)
	}
}
