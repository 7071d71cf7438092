// Package domain defines the encrypted backup artifact and its integrity record.
package domain

import (
	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	"github.com/allisson/piiguard/internal/errors"
)

const (
	// ArtifactFileName is the encrypted dump written into the backup directory.
	ArtifactFileName = "backup_encrypted.bin"

	// SidecarFileName holds the lowercase hex SHA-256 of the artifact.
	SidecarFileName = "backup_hash.txt"
)

// Artifact describes a backup written to disk.
type Artifact struct {
	Path        string
	SidecarPath string
	Digest      cryptoDomain.Digest
	Size        int
}

// Verification is the outcome of checking an artifact against its sidecar.
type Verification struct {
	Path     string
	Expected string
	Actual   cryptoDomain.Digest
	OK       bool
}

// Backup workflow errors.
var (
	// ErrIntegrityMismatch indicates the artifact no longer matches its recorded digest.
	// Restores halt on it unless verification is explicitly skipped.
	ErrIntegrityMismatch = errors.New("backup integrity mismatch")

	// ErrArtifactMissing indicates the backup directory has no encrypted artifact.
	ErrArtifactMissing = errors.Wrap(errors.ErrNotFound, "backup artifact not found")

	// ErrSidecarMissing indicates the backup directory has no digest file.
	ErrSidecarMissing = errors.Wrap(errors.ErrNotFound, "backup hash file not found")

	// ErrEmptyDump indicates the dump source produced no bytes.
	ErrEmptyDump = errors.Wrap(errors.ErrInvalidInput, "database dump is empty")

	// ErrNoDumpCommand indicates neither an input file nor BACKUP_DUMP_COMMAND was given.
	ErrNoDumpCommand = errors.Wrap(errors.ErrConfiguration, "no dump source configured")
)
