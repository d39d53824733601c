// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrInvalidSecret indicates an empty or otherwise unusable secret was
	// supplied to key derivation.
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrDuplicateLogin indicates the login is already taken.
	ErrDuplicateLogin = errors.New("login already exists")

	// ErrInvalidCredentials indicates a failed login attempt. Unknown login
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIntegrity indicates ciphertext tampering, corruption or a wrong
	// key. The cases are unified to avoid oracle leakage.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller does not own the entity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrStorage indicates a failure in the persistence collaborator.
	ErrStorage = errors.New("storage failure")
)

// Session token verification failures. Kept distinct internally; the auth
// middleware collapses all of them into ErrUnauthenticated at the boundary.
var (
	// ErrTokenExpired indicates the embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates the token could not be parsed.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrBadSignature indicates signature verification failed.
	ErrBadSignature = errors.New("bad token signature")

	// ErrUnauthenticated is the uniform outward-facing auth failure.
	ErrUnauthenticated = errors.New("unauthenticated")
)
