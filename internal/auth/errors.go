package auth

import "errors"

var (
	ErrInvalidUsername    = errors.New("username must be 3-64 characters")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUserNotFound       = errors.New("user not found")
)
