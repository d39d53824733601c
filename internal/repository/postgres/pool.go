// Package postgres implements the repository interfaces over the vault's
// PostgreSQL schema (accounts, credentials).
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// hit, e.g. registering an already-taken login.
const uniqueViolation = "23505"

// Querier is the subset of *pgxpool.Pool the repositories rely on.
// Tests substitute a pgxmock pool through the same interface.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
}

// DB carries the shared pool handle the account and credential
// repositories are built on.
type DB struct{ Pool Querier }

func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == uniqueViolation
}
