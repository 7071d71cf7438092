// Package service provides technical services for authentication operations.
//
// This package implements password hashing and verification and the signing and
// verification of stateless session tokens.
package service

import (
	authDomain "github.com/allisson/piiguard/internal/auth/domain"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash returns a salted, self-describing hash of password. Two calls for the
	// same password return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. Malformed or unknown hash
	// formats return false.
	Verify(password, hash string) bool

	// NeedsRehash reports whether hash uses a legacy scheme that should be
	// replaced after the next successful Verify.
	NeedsRehash(hash string) bool
}

// TokenService issues and verifies signed, time-bound session tokens.
type TokenService interface {
	// Issue signs a token for subject carrying role.
	Issue(subject string, role authDomain.Role) (*authDomain.IssuedToken, error)

	// Verify checks signature, algorithm and expiry. It returns ErrTokenExpired for
	// an expired token and ErrTokenInvalid for anything else that is wrong.
	Verify(token string) (*authDomain.Principal, error)
}
