package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lifeos/internal/auth"
	repo "lifeos/internal/auth/repository"
	"lifeos/internal/model"
)

const minPasswordLen = 8

// Register creates an account with a bcrypt password hash.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < 3 || len(username) > 64 {
		return auth.RegisterOutput{}, auth.ErrInvalidUsername
	}
	if len(input.Password) < minPasswordLen {
		return auth.RegisterOutput{}, auth.ErrWeakPassword
	}
	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return auth.RegisterOutput{}, auth.ErrInvalidTimezone
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.RegisterOutput{}, err
	}
	if existing.ID != 0 {
		return auth.RegisterOutput{}, auth.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return auth.RegisterOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, model.User{
		Username:     username,
		PasswordHash: string(hash),
		Timezone:     timezone,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return auth.RegisterOutput{}, auth.ErrUsernameTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Register: user %d registered", user.ID)
	return auth.RegisterOutput{User: user}, nil
}

// Me returns the caller's account.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == 0 {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}
