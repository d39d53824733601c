// Package token issues and verifies signed, time-bounded session tokens
// binding a request to an account identity.
//
// Tokens are stateless HS256 JWTs and cannot be revoked before their
// natural expiry; logout is client-side discard only.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpov87/passvault/internal/errs"
)

// DefaultLifetime is the fixed session lifetime.
const DefaultLifetime = 24 * time.Hour

// Manager signs and verifies session tokens. The signing key is
// process-wide secret material configured at startup, never derived from
// user secrets, and never mutated after construction.
type Manager struct {
	signKey  []byte
	lifetime time.Duration
}

// NewManager constructs a Manager. The signing key must be non-empty; a
// non-positive lifetime falls back to DefaultLifetime.
func NewManager(signKey []byte, lifetime time.Duration) (*Manager, error) {
	if len(signKey) == 0 {
		return nil, errors.New("token: empty signing key")
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Manager{signKey: signKey, lifetime: lifetime}, nil
}

// Issue creates a signed HS256 JWT for the given account.
func (m *Manager) Issue(accountID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.lifetime)
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.signKey)
	return signed, exp, err
}

// Verify checks the signature first, then the embedded expiry, and
// resolves the token to an account ID. Failure kinds stay distinct here
// (errs.ErrBadSignature, errs.ErrTokenExpired, errs.ErrTokenMalformed);
// the middleware collapses them at the boundary.
func (m *Manager) Verify(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.signKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, errs.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, errs.ErrTokenExpired
		default:
			return uuid.Nil, errs.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return uuid.Nil, errs.ErrBadSignature
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrTokenMalformed
	}
	return id, nil
}
