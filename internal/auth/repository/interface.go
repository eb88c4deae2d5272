package repository

import (
	"context"
	"time"

	"lifeos/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
	SessionRepository
}

type UserRepository interface {
	// CreateUser returns ErrDuplicate when the username is taken.
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	// GetOneUser returns a zero-value User when not found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session model.Session) error
	// GetSession returns a zero-value Session when not found.
	GetSession(ctx context.Context, token string) (model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
