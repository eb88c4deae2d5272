package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lifeos/internal/auth"
	"lifeos/internal/calendar"
	"lifeos/internal/item"
	"lifeos/internal/list"
	"lifeos/internal/note"
	"lifeos/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage, used by the readiness probe
	db *gorm.DB

	// Domains
	authUC     auth.UseCase
	itemUC     item.UseCase
	calendarUC calendar.UseCase
	noteUC     note.UseCase
	listUC     list.UseCase

	// Session cookie and rate limit settings
	cookieName     string
	cookieSecure   bool
	requestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *gorm.DB

	AuthUseCase     auth.UseCase
	ItemUseCase     item.UseCase
	CalendarUseCase calendar.UseCase
	NoteUseCase     note.UseCase
	ListUseCase     list.UseCase

	CookieName     string
	CookieSecure   bool
	RequestsPerMin int
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		authUC:         cfg.AuthUseCase,
		itemUC:         cfg.ItemUseCase,
		calendarUC:     cfg.CalendarUseCase,
		noteUC:         cfg.NoteUseCase,
		listUC:         cfg.ListUseCase,
		cookieName:     cfg.CookieName,
		cookieSecure:   cfg.CookieSecure,
		requestsPerMin: cfg.RequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.authUC == nil || srv.itemUC == nil || srv.calendarUC == nil || srv.noteUC == nil || srv.listUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
