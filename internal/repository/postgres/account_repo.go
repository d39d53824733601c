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

// AccountRepo implements AccountRepository using PostgreSQL.
type AccountRepo struct{ db *DB }

// NewAccountRepo constructs an account repository.
func NewAccountRepo(db *DB) *AccountRepo { return &AccountRepo{db: db} }

// Create inserts a new account row.
func (r *AccountRepo) Create(ctx context.Context, a *model.Account) error {
	const q = `
INSERT INTO accounts (id, login, pwd_hash, salt_auth, vault_salt)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, a.ID, a.Login, a.PwdHash, a.SaltAuth, a.VaultSalt)
	if isUniqueViolation(err) {
		return errs.ErrDuplicateLogin
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	return nil
}

// GetByID selects an account by ID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	const q = `
SELECT id, login, pwd_hash, salt_auth, vault_salt, created_at
FROM accounts WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByLogin selects an account by login name.
func (r *AccountRepo) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	const q = `
SELECT id, login, pwd_hash, salt_auth, vault_salt, created_at
FROM accounts WHERE login=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, login))
}

func (r *AccountRepo) scanOne(row pgx.Row) (*model.Account, error) {
	var a model.Account
	if err := row.Scan(&a.ID, &a.Login, &a.PwdHash, &a.SaltAuth, &a.VaultSalt, &a.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	return &a, nil
}

// Delete removes the account and all of its credential records in one
// transaction. The cascade is an explicit statement, not schema magic, so
// the ownership invariant is visible at the persistence boundary.
func (r *AccountRepo) Delete(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = fmt.Errorf("%w: %w", errs.ErrStorage, e)
		}
	}()

	const delCreds = `DELETE FROM credentials WHERE account_id=$1`
	const delAccount = `DELETE FROM accounts WHERE id=$1`

	if _, err = tx.Exec(ctx, delCreds, id); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	tag, err := tx.Exec(ctx, delAccount, id)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
