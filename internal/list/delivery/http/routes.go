package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lists := rg.Group("/lists", mw.Auth(), mw.RateLimit())
	{
		lists.POST("", h.Create)
		lists.GET("", h.List)
		lists.GET("/:id", h.Detail)
		lists.PATCH("/:id", h.Update)
		lists.DELETE("/:id", h.Delete)
		lists.POST("/:id/entries", h.AddEntry)
		lists.PATCH("/:id/entries/:entryId", h.UpdateEntry)
		lists.DELETE("/:id/entries/:entryId", h.DeleteEntry)
		lists.POST("/:id/clear-checked", h.ClearChecked)
	}
}
