// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// EncryptedBlob is an opaque AEAD ciphertext. It is the only form in which
// a credential password ever reaches the persistence collaborator.
type EncryptedBlob []byte

// Account represents a registered vault owner. The raw password is never
// stored; only the Argon2id hash and the per-account salts are.
type Account struct {
	ID        uuid.UUID // PK
	Login     string    // unique across all accounts
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-account password-hash salt
	VaultSalt []byte    // per-account vault-key derivation salt
	CreatedAt time.Time
}

// CredentialRecord is a stored per-site credential. Ciphertext is opaque;
// the plaintext password exists only transiently during seal/open.
type CredentialRecord struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID // FK -> accounts.id
	Site         string
	SiteUsername string
	Ciphertext   EncryptedBlob
	CreatedAt    time.Time
}

// DecryptedCredential is a credential record with its password recovered.
// It never leaves the process and must never be persisted or logged.
type DecryptedCredential struct {
	ID           uuid.UUID
	Site         string
	SiteUsername string
	Password     string
	CreatedAt    time.Time
}
