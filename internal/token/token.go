// Package token issues and verifies the signed identity tokens carried
// in the session cookie.
package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed lifetime of an issued token.
const TTL = 24 * time.Hour

// Manager signs and verifies identity tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a manager signing with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: TTL}
}

// Issue returns a signed token identifying userID, expiring after TTL.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the user id the
// token was issued for.
func (m *Manager) Verify(token string) (string, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &jwtlib.RegisteredClaims{}, func(t *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwtlib.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", jwtlib.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
