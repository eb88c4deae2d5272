package middleware

import (
	"context"

	"lifeos/internal/model"
	"lifeos/pkg/log"
)

// SessionResolver maps a session token to the caller's scope.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.Scope, error)
}

// Config holds the middleware settings read from configuration.
type Config struct {
	CookieName     string
	RequestsPerMin int
}

type Middleware struct {
	l          log.Logger
	sessions   SessionResolver
	cookieName string
	limiter    *rateLimiter
}

func New(l log.Logger, sessions SessionResolver, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = "lifeos_session"
	}
	return Middleware{
		l:          l,
		sessions:   sessions,
		cookieName: cfg.CookieName,
		limiter:    newRateLimiter(cfg.RequestsPerMin),
	}
}

// CookieName is the session cookie the auth handlers set and clear.
func (m Middleware) CookieName() string {
	return m.cookieName
}
