package token

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// accountKey is unexported so the authenticated identity can only enter
// and leave a context through the two helpers below.
type accountKey struct{}

// WithAccountID returns a context carrying the authenticated account ID.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountKey{}, id)
}

// AccountIDFromCtx extracts the account ID placed by WithAccountID. The
// second return is false when no identity has been attached.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountKey{}).(uuid.UUID)
	return id, ok
}
