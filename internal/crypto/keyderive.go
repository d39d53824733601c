package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/akarpov87/passvault/internal/errs"
)

// Vault key derivation parameters. The iteration count is fixed; retuning
// it requires re-encrypting existing records, so treat it as part of the
// on-disk format.
const (
	deriveIters = 100_000
	VaultKeyLen = 32 // matches the AEAD key size
)

// DeriveKey derives a fixed-length vault key from a secret and a salt via
// PBKDF2-HMAC-SHA256. Pure function of (secret, salt); the only failure
// mode is an empty input.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(secret) == 0 || len(salt) == 0 {
		return nil, errs.ErrInvalidSecret
	}
	return pbkdf2.Key(secret, salt, deriveIters, VaultKeyLen, sha256.New), nil
}
