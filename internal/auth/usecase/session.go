package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"lifeos/internal/auth"
	repo "lifeos/internal/auth/repository"
	"lifeos/internal/model"
)

// Login checks the password and opens a new session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: strings.TrimSpace(input.Username)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == 0 {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	now := uc.now().UTC()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateSession: %v", err)
		return auth.LoginOutput{}, err
	}
	uc.sessions.Add(session.Token, session)

	return auth.LoginOutput{User: user, Token: session.Token, ExpiresAt: session.ExpiresAt}, nil
}

// Logout revokes the session. Unknown tokens are ignored.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	uc.sessions.Remove(token)
	if err := uc.repo.DeleteSession(ctx, token); err != nil {
		uc.l.Errorf(ctx, "uc.Logout DeleteSession: %v", err)
		return err
	}
	return nil
}

// Resolve looks the token up in the session cache, falling back to the store.
func (uc *implUseCase) Resolve(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, auth.ErrInvalidSession
	}
	now := uc.now().UTC()

	session, ok := uc.sessions.Get(token)
	if !ok {
		var err error
		session, err = uc.repo.GetSession(ctx, token)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Resolve GetSession: %v", err)
			return model.Scope{}, err
		}
		if session.Token == "" {
			return model.Scope{}, auth.ErrInvalidSession
		}
		uc.sessions.Add(token, session)
	}

	if session.Expired(now) {
		uc.sessions.Remove(token)
		return model.Scope{}, auth.ErrInvalidSession
	}
	return model.Scope{UserID: session.UserID}, nil
}

// PurgeExpiredSessions deletes expired sessions from the store.
func (uc *implUseCase) PurgeExpiredSessions(ctx context.Context) (int, error) {
	n, err := uc.repo.DeleteExpiredSessions(ctx, uc.now().UTC())
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeExpiredSessions: %v", err)
		return 0, err
	}
	if n > 0 {
		uc.l.Infof(ctx, "uc.PurgeExpiredSessions: removed %d sessions", n)
	}
	return n, nil
}
