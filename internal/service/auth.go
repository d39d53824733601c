// Package service contains the application services: account
// authentication and the ownership-scoped credential store.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/akarpov87/passvault/internal/crypto"
	"github.com/akarpov87/passvault/internal/errs"
	"github.com/akarpov87/passvault/internal/limiter"
	"github.com/akarpov87/passvault/internal/model"
	"github.com/akarpov87/passvault/internal/repository"
)

// AuthService defines account registration and authentication.
type AuthService interface {
	// Register creates a new account with secure password hashing.
	Register(ctx context.Context, login, password string) (model.Account, error)
	// Authenticate verifies a presented secret with rate limiting by (login, ip).
	Authenticate(ctx context.Context, login, password, ip string) (model.Account, error)
	// DeleteAccount removes an account and every credential record it owns.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type AuthServiceImpl struct {
	accounts repository.AccountRepository
	lim      limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(accounts repository.AccountRepository, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{accounts: accounts, lim: lim}
}

// Register creates a new account with a unique auth salt and vault salt.
func (s *AuthServiceImpl) Register(ctx context.Context, login, password string) (model.Account, error) {
	if login == "" || password == "" {
		return model.Account{}, errors.New("empty login/password")
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Account{}, err
	}
	saltAuth, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return model.Account{}, err
	}
	vaultSalt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return model.Account{}, err
	}

	a := model.Account{
		ID:        id,
		Login:     login,
		PwdHash:   pkgcrypto.HashPassword([]byte(password), saltAuth),
		SaltAuth:  saltAuth,
		VaultSalt: vaultSalt,
	}
	if err := s.accounts.Create(ctx, &a); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

// Authenticate looks up the account and verifies the password. Unknown
// login and wrong password fail identically with ErrInvalidCredentials so
// responses cannot be used for login enumeration.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, login, password, ip string) (model.Account, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, login, ipHash)
	if err != nil {
		return model.Account{}, err
	}
	if !allowed {
		return model.Account{}, errs.ErrRateLimited
	}

	a, err := s.accounts.GetByLogin(ctx, login)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		// storage failures are internal, not an authentication verdict
		return model.Account{}, err
	}
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), a.SaltAuth, a.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, login, ipHash); ferr == nil && blocked {
			return model.Account{}, errs.ErrRateLimited
		}
		// unknown logins and hash mismatches are indistinguishable
		return model.Account{}, errs.ErrInvalidCredentials
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, login, ipHash)

	return *a, nil
}

// DeleteAccount removes the account; the repository cascades the delete
// to its credential records in the same transaction.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("validation: empty account id")
	}
	return s.accounts.Delete(ctx, id)
}
