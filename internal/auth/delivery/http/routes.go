package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Register and login are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/register", mw.RateLimit(), h.Register)
		a.POST("/login", mw.RateLimit(), h.Login)
		a.POST("/logout", mw.Auth(), h.Logout)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
