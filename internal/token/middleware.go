package token

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/akarpov87/passvault/internal/errs"
)

// AuthedHandler runs on behalf of a verified account identity.
type AuthedHandler func(ctx context.Context, accountID uuid.UUID) error

// Handler takes the raw bearer credential presented by the caller.
type Handler func(ctx context.Context, bearer string) error

// Require wraps h so it only runs after the bearer token verifies. The
// resolved account ID is passed to h and stored in the context. Every
// verification failure — expired, malformed or forged — surfaces as the
// single errs.ErrUnauthenticated so callers learn nothing about which
// check failed.
func (m *Manager) Require(h AuthedHandler) Handler {
	return func(ctx context.Context, bearer string) error {
		id, err := m.Verify(stripBearer(bearer))
		if err != nil {
			return errs.ErrUnauthenticated
		}
		return h(WithAccountID(ctx, id), id)
	}
}

// stripBearer removes an optional "Bearer " scheme prefix. The core only
// verifies the credential; parsing transport headers is the caller's job.
func stripBearer(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 7 && strings.EqualFold(s[:7], "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
