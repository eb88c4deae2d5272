package auth

import (
	"time"

	"lifeos/internal/model"
)

// --- UseCase Inputs ---

// RegisterInput creates an account. An empty Timezone means UTC.
type RegisterInput struct {
	Username string
	Password string
	Timezone string
}

type LoginInput struct {
	Username string
	Password string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}

type MeOutput struct {
	User model.User
}
