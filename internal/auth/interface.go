package auth

import (
	"context"

	"lifeos/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)

	// Resolve maps a session token to the caller's scope.
	Resolve(ctx context.Context, token string) (model.Scope, error)

	// PurgeExpiredSessions deletes sessions past their expiry and returns how many.
	PurgeExpiredSessions(ctx context.Context) (int, error)
}
