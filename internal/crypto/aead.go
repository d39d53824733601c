package crypto

import (
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/akarpov87/passvault/internal/errs"
)

// Seal encrypts plaintext with XChaCha20-Poly1305 under key and returns a
// self-contained blob: 24-byte random nonce || ciphertext+tag. A fresh
// nonce per call makes repeated encryptions of equal plaintext distinct.
// The aad is authenticated but not stored; callers bind the owner identity
// through it so a blob cannot be opened in another owner's scope.
func Seal(key, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce, err := RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, aad)...)
	return out, nil
}

// Open decrypts a blob produced by Seal. Tampering, truncation, a wrong
// key and an aad mismatch all fail with the same errs.ErrIntegrity; no
// partial plaintext is ever returned.
func Open(key, blob, aad []byte) ([]byte, error) {
	if len(blob) < chacha20poly1305.NonceSizeX {
		return nil, errs.ErrIntegrity
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := blob[:chacha20poly1305.NonceSizeX]
	ct := blob[chacha20poly1305.NonceSizeX:]
	pt, err := aead.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, errs.ErrIntegrity
	}
	return pt, nil
}
