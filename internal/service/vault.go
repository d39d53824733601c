package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/akarpov87/passvault/internal/crypto"
	"github.com/akarpov87/passvault/internal/errs"
	"github.com/akarpov87/passvault/internal/model"
	"github.com/akarpov87/passvault/internal/repository"
)

// VaultService defines ownership-scoped operations over encrypted
// credential records. Every operation takes the authenticated account ID
// as its owner scope; callers obtain it from the token middleware, never
// from request input.
type VaultService interface {
	// Add encrypts and stores a credential, returning the new record ID.
	Add(ctx context.Context, ownerID uuid.UUID, site, siteUsername, password string) (uuid.UUID, error)
	// List returns all of the owner's credentials, decrypted.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.DecryptedCredential, error)
	// Remove deletes a single record after an explicit ownership check.
	Remove(ctx context.Context, ownerID, recordID uuid.UUID) error
}

type VaultServiceImpl struct {
	accounts     repository.AccountRepository
	creds        repository.CredentialRepository
	masterSecret []byte
	log          *zap.Logger
}

// NewVaultService constructs VaultService. The master secret is
// process-wide configuration; construction fails on an empty secret
// rather than defaulting to anything.
func NewVaultService(
	accounts repository.AccountRepository,
	creds repository.CredentialRepository,
	masterSecret []byte,
	log *zap.Logger,
) (*VaultServiceImpl, error) {
	if len(masterSecret) == 0 {
		return nil, errs.ErrInvalidSecret
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &VaultServiceImpl{
		accounts:     accounts,
		creds:        creds,
		masterSecret: masterSecret,
		log:          log,
	}, nil
}

// ownerKey derives the owner's vault key from the master secret and the
// per-account salt. The key never leaves this package.
func (s *VaultServiceImpl) ownerKey(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	a, err := s.accounts.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return pkgcrypto.DeriveKey(s.masterSecret, a.VaultSalt)
}

// Add encrypts the password under the owner's vault key and persists the
// record. Plain insert: duplicates per (owner, site) are permitted.
func (s *VaultServiceImpl) Add(ctx context.Context, ownerID uuid.UUID, site, siteUsername, password string) (uuid.UUID, error) {
	if ownerID == uuid.Nil {
		return uuid.Nil, errors.New("validation: empty owner id")
	}
	if site == "" || password == "" {
		return uuid.Nil, errors.New("validation: empty site/password")
	}

	key, err := s.ownerKey(ctx, ownerID)
	if err != nil {
		return uuid.Nil, err
	}
	blob, err := pkgcrypto.Seal(key, []byte(password), ownerID.Bytes())
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	rec := model.CredentialRecord{
		ID:           id,
		OwnerID:      ownerID,
		Site:         site,
		SiteUsername: siteUsername,
		Ciphertext:   blob,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.creds.Insert(ctx, &rec); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List fetches and decrypts every record owned by ownerID. A single
// record that fails to open fails the whole call: partial corruption is
// surfaced, never silently omitted.
func (s *VaultServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]model.DecryptedCredential, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("validation: empty owner id")
	}

	key, err := s.ownerKey(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	recs, err := s.creds.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]model.DecryptedCredential, 0, len(recs))
	for _, rec := range recs {
		pt, err := pkgcrypto.Open(key, rec.Ciphertext, ownerID.Bytes())
		if err != nil {
			// loud internally, generic to the caller
			s.log.Error("credential record failed integrity check",
				zap.String("record_id", rec.ID.String()),
				zap.String("owner_id", ownerID.String()),
			)
			return nil, fmt.Errorf("record %s: %w", rec.ID, errs.ErrIntegrity)
		}
		out = append(out, model.DecryptedCredential{
			ID:           rec.ID,
			Site:         rec.Site,
			SiteUsername: rec.SiteUsername,
			Password:     string(pt),
			CreatedAt:    rec.CreatedAt,
		})
	}
	return out, nil
}

// Remove fetches the record first and compares owners explicitly before
// deleting, so the authorization decision is auditable rather than
// implicit in a query predicate.
func (s *VaultServiceImpl) Remove(ctx context.Context, ownerID, recordID uuid.UUID) error {
	if ownerID == uuid.Nil || recordID == uuid.Nil {
		return errors.New("validation: empty owner/record id")
	}

	rec, err := s.creds.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if rec.OwnerID != ownerID {
		return errs.ErrUnauthorized
	}
	return s.creds.DeleteByID(ctx, recordID)
}
