package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses and
// machine-readable codes; anything else coming out of a service is treated
// as a store failure (500).
var (
	// ErrNotFound covers both true absence and cross-tenant access attempts,
	// so existence outside the caller's organization is never disclosed.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness violation (username or email).
	ErrConflict = errors.New("record already exists")

	// ErrInvalidCredentials is deliberately uniform: an unknown username and
	// a wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is deliberately uniform: a missing, malformed, expired
	// or badly signed token all look the same to the caller.
	ErrInvalidToken = errors.New("invalid token")
)
