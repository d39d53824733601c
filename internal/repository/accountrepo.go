// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/akarpov87/passvault/internal/model"
	"github.com/gofrs/uuid/v5"
)

// AccountRepository provides CRUD access for accounts.
type AccountRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, a *model.Account) error
	// GetByID loads an account by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	// GetByLogin loads an account by login name.
	GetByLogin(ctx context.Context, login string) (*model.Account, error)
	// Delete removes the account and, in the same transaction, every
	// credential record it owns.
	Delete(ctx context.Context, id uuid.UUID) error
}
