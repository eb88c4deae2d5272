package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lifeos/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account"
// @Success     201 {object} userEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     409 {object} response.ErrorResp "Username taken"
// @Router      /api/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, userEnvelope{User: newUserResp(output.User)})
}

// Login godoc
// @Summary     Log in
// @Description Returns a bearer token and also sets it as the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.ErrorResp "Invalid credentials"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, output.Token, cookieMaxAge(output.ExpiresAt, time.Now()), "/", "", h.cookieSecure, true)
	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} map[string]any "OK"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, h.processToken(c)); err != nil {
		h.l.Warnf(ctx, "auth.http.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current account
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userEnvelope
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, userEnvelope{User: newUserResp(output.User)})
}
