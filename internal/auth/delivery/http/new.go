package http

import (
	"lifeos/internal/auth"
	"lifeos/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	cookieName   string
	cookieSecure bool
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookieName string, cookieSecure bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}
