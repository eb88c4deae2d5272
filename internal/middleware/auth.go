package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lifeos/internal/model"
	pkgErrors "lifeos/pkg/errors"
	"lifeos/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth resolves the bearer token (or session cookie) and stores the caller's
// scope in the request context. Requests without a valid session get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := SessionToken(c, m.cookieName)
		if token == "" {
			response.Error(c, pkgErrors.ErrUnauthorized)
			return
		}

		sc, err := m.sessions.Resolve(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Error(c, pkgErrors.ErrUnauthorized)
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// SessionToken returns the token from the Authorization header, falling back to the cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
