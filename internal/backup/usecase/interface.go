// Package usecase implements the encrypted backup and restore workflow.
package usecase

import (
	"context"

	"github.com/allisson/piiguard/internal/backup/domain"
	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// BackupUseCase encrypts database dumps into artifacts and recovers them.
type BackupUseCase interface {
	// MakeBackup encrypts raw into a self-describing blob.
	MakeBackup(ctx context.Context, raw []byte) ([]byte, error)

	// RestoreBackup decrypts a blob produced by MakeBackup. Returns ErrUnwrapFailed
	// or ErrDecryptionFailed; no partial output is ever returned.
	RestoreBackup(ctx context.Context, blob []byte) ([]byte, error)

	// Digest returns the SHA-256 of data.
	Digest(data []byte) cryptoDomain.Digest

	// Matches reports whether data hashes to digest.
	Matches(data []byte, digest cryptoDomain.Digest) bool

	// Create encrypts raw and writes the artifact and its sidecar into dir.
	Create(ctx context.Context, raw []byte, dir string) (*domain.Artifact, error)

	// Verify checks the artifact in dir against its sidecar. A mismatch returns the
	// verification together with ErrIntegrityMismatch.
	Verify(ctx context.Context, dir string) (*domain.Verification, error)

	// Restore verifies and decrypts the artifact in dir. With skipVerify a mismatch
	// is logged instead of halting.
	Restore(ctx context.Context, dir string, skipVerify bool) ([]byte, error)
}
