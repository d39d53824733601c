package repository

import (
	"context"

	"github.com/akarpov87/passvault/internal/model"
	"github.com/gofrs/uuid/v5"
)

// CredentialRepository provides access to encrypted credential records.
type CredentialRepository interface {
	// Insert stores a new record. Plain insert: no uniqueness across
	// (owner, site).
	Insert(ctx context.Context, rec *model.CredentialRecord) error

	// GetByID returns a record regardless of owner. Ownership checks are
	// the service's job, made explicit there rather than hidden in a
	// query predicate.
	GetByID(ctx context.Context, id uuid.UUID) (*model.CredentialRecord, error)

	// ListByOwner returns all records owned by the given account.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CredentialRecord, error)

	// DeleteByID removes a single record.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
