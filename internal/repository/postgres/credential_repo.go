package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov87/passvault/internal/errs"
	"github.com/akarpov87/passvault/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements CredentialRepository using PostgreSQL.
type CredentialRepo struct{ db *DB }

// NewCredentialRepo constructs a credential repository.
func NewCredentialRepo(db *DB) *CredentialRepo { return &CredentialRepo{db: db} }

// Insert stores a new credential record.
func (r *CredentialRepo) Insert(ctx context.Context, rec *model.CredentialRecord) error {
	const q = `
INSERT INTO credentials (id, account_id, site, site_username, ciphertext, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q,
		rec.ID, rec.OwnerID, rec.Site, rec.SiteUsername, []byte(rec.Ciphertext), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	return nil
}

// GetByID selects a single record by ID, regardless of owner.
func (r *CredentialRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.CredentialRecord, error) {
	const q = `
SELECT id, account_id, site, site_username, ciphertext, created_at
FROM credentials WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var rec model.CredentialRecord
	var ct []byte
	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Site, &rec.SiteUsername, &ct, &rec.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	rec.Ciphertext = model.EncryptedBlob(ct)
	return &rec, nil
}

// ListByOwner returns all records for an owner, oldest first.
func (r *CredentialRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CredentialRecord, error) {
	const q = `
SELECT id, account_id, site, site_username, ciphertext, created_at
FROM credentials
WHERE account_id=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	defer rows.Close()

	var out []model.CredentialRecord
	for rows.Next() {
		var rec model.CredentialRecord
		var ct []byte
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Site, &rec.SiteUsername, &ct, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
		}
		rec.Ciphertext = model.EncryptedBlob(ct)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	return out, nil
}

// DeleteByID removes a single record.
func (r *CredentialRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM credentials WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
