package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "lifeos/internal/auth/delivery/http"
	calendarHTTP "lifeos/internal/calendar/delivery/http"
	itemHTTP "lifeos/internal/item/delivery/http"
	listHTTP "lifeos/internal/list/delivery/http"
	"lifeos/internal/middleware"
	noteHTTP "lifeos/internal/note/delivery/http"
)

// Each setupXDomain builds the handler from its use case and registers
// routes under the shared /api group.

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, srv.authUC, mw.CookieName(), srv.cookieSecure)
	authHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := itemHTTP.New(srv.l, srv.itemUC)
	itemHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Item domain registered")
}

func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Calendar domain registered")
}

func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := noteHTTP.New(srv.l, srv.noteUC)
	noteHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Note domain registered")
}

func (srv HTTPServer) setupListDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := listHTTP.New(srv.l, srv.listUC)
	listHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "List domain registered")
}
