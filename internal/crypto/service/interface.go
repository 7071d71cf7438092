// Package service implements the PII and backup cryptography: key storage,
// field encryption, hybrid backup encryption and artifact digests.
package service

import (
	"context"
	"crypto/rsa"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// KeyStore hands out the process-wide key material.
type KeyStore interface {
	// SymmetricKey returns the 32-byte field key, creating and persisting it on first use.
	// The returned slice is a copy the caller may zero.
	SymmetricKey(ctx context.Context) ([]byte, error)

	// PublicKey returns the RSA key used to wrap backup keys.
	PublicKey() *rsa.PublicKey

	// PrivateKey returns the RSA key used to unwrap backup keys, or
	// ErrPrivateKeyUnavailable when none was provisioned.
	PrivateKey() (*rsa.PrivateKey, error)
}

// FieldEncrypter protects short text values stored in PII columns.
type FieldEncrypter interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, field string) (string, error)
}

// BackupEncrypter protects whole database dumps.
type BackupEncrypter interface {
	Encrypt(ctx context.Context, raw []byte) ([]byte, error)
	Decrypt(ctx context.Context, blob []byte) ([]byte, error)
}

// Verifier computes and checks artifact digests.
type Verifier interface {
	Digest(data []byte) cryptoDomain.Digest
	Matches(data []byte, digest cryptoDomain.Digest) bool
}
