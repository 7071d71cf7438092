package service

import (
	"crypto/sha256"
	"crypto/subtle"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// IntegrityVerifier hashes backup artifacts with SHA-256.
type IntegrityVerifier struct{}

// NewIntegrityVerifier creates an IntegrityVerifier.
func NewIntegrityVerifier() *IntegrityVerifier {
	return &IntegrityVerifier{}
}

// Digest returns the SHA-256 of data.
func (v *IntegrityVerifier) Digest(data []byte) cryptoDomain.Digest {
	return sha256.Sum256(data)
}

// Matches recomputes the digest of data and compares it in constant time.
func (v *IntegrityVerifier) Matches(data []byte, digest cryptoDomain.Digest) bool {
	actual := v.Digest(data)
	return subtle.ConstantTimeCompare(actual[:], digest[:]) == 1
}
