package http

import (
	"lifeos/internal/list"
	"lifeos/pkg/log"
)

type handler struct {
	l  log.Logger
	uc list.UseCase
}

// New creates a new HTTP handler for the list domain.
func New(l log.Logger, uc list.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
