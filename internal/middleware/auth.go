// Package middleware contains the auth gate run before every protected
// route.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamforge/teamforge/internal/domain"
)

// Authenticator resolves a session token to the user it identifies.
// Implemented by service.AuthService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

const userContextKey = "currentUser"

// UserAuth validates the "token" cookie and attaches the resolved user
// to the request context. Requests without a valid token are rejected
// with 401 before the handler runs.
func UserAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie("token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "no token"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by UserAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
