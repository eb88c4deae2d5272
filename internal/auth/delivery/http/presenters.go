package http

import (
	"time"

	"lifeos/internal/auth"
	"lifeos/internal/model"
	"lifeos/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{Username: r.Username, Password: r.Password, Timezone: r.Timezone}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Username: r.Username, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID        uint              `json:"id"`
	Username  string            `json:"username"`
	Timezone  string            `json:"timezone"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Timezone:  u.Timezone,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type userEnvelope struct {
	User userResp `json:"user"`
}

type loginResp struct {
	Token     string            `json:"token"`
	ExpiresAt response.DateTime `json:"expiresAt"`
	User      userResp          `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		ExpiresAt: response.DateTime(out.ExpiresAt),
		User:      newUserResp(out.User),
	}
}

func cookieMaxAge(expiresAt, now time.Time) int {
	secs := int(expiresAt.Sub(now).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}
