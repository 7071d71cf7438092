package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/piiguard/internal/backup/domain"
	"github.com/allisson/piiguard/internal/backup/service"
	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

const (
	backupDirPerm  = 0o700
	backupFilePerm = 0o600
)

type backupUseCase struct {
	cipher   cryptoService.BackupEncrypter
	verifier cryptoService.Verifier
	logger   *slog.Logger
}

// NewBackupUseCase creates a new BackupUseCase.
func NewBackupUseCase(
	cipher cryptoService.BackupEncrypter,
	verifier cryptoService.Verifier,
	logger *slog.Logger,
) BackupUseCase {
	return &backupUseCase{
		cipher:   cipher,
		verifier: verifier,
		logger:   logger,
	}
}

func (uc *backupUseCase) MakeBackup(ctx context.Context, raw []byte) ([]byte, error) {
	return uc.cipher.Encrypt(ctx, raw)
}

func (uc *backupUseCase) RestoreBackup(ctx context.Context, blob []byte) ([]byte, error) {
	return uc.cipher.Decrypt(ctx, blob)
}

func (uc *backupUseCase) Digest(data []byte) cryptoDomain.Digest {
	return uc.verifier.Digest(data)
}

func (uc *backupUseCase) Matches(data []byte, digest cryptoDomain.Digest) bool {
	return uc.verifier.Matches(data, digest)
}

func (uc *backupUseCase) Create(ctx context.Context, raw []byte, dir string) (*domain.Artifact, error) {
	if len(raw) == 0 {
		return nil, domain.ErrEmptyDump
	}

	blob, err := uc.MakeBackup(ctx, raw)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt backup")
	}
	digest := uc.Digest(blob)

	if err := os.MkdirAll(dir, backupDirPerm); err != nil {
		return nil, apperrors.Wrap(err, "failed to create backup directory")
	}

	artifact := &domain.Artifact{
		Path:        filepath.Join(dir, domain.ArtifactFileName),
		SidecarPath: filepath.Join(dir, domain.SidecarFileName),
		Digest:      digest,
		Size:        len(blob),
	}

	// The sidecar goes last so a crash never leaves a digest for a missing artifact.
	if err := service.WriteFileAtomic(artifact.Path, blob, backupFilePerm); err != nil {
		return nil, apperrors.Wrap(err, "failed to write backup artifact")
	}
	if err := service.WriteFileAtomic(artifact.SidecarPath, []byte(digest.String()+"\n"), backupFilePerm); err != nil {
		return nil, apperrors.Wrap(err, "failed to write backup hash")
	}

	uc.logger.Info("backup created",
		slog.String("path", artifact.Path),
		slog.Int("size", artifact.Size),
		slog.String("sha256", digest.String()),
	)
	return artifact, nil
}

func (uc *backupUseCase) Verify(_ context.Context, dir string) (*domain.Verification, error) {
	_, verification, err := uc.readAndVerify(dir)
	return verification, err
}

func (uc *backupUseCase) Restore(ctx context.Context, dir string, skipVerify bool) ([]byte, error) {
	blob, _, err := uc.readAndVerify(dir)
	switch {
	case err == nil:
	case skipVerify && (errors.Is(err, domain.ErrIntegrityMismatch) || errors.Is(err, domain.ErrSidecarMissing)):
		uc.logger.Warn("restoring without a matching integrity record",
			slog.String("path", filepath.Join(dir, domain.ArtifactFileName)),
			slog.String("reason", err.Error()),
		)
	default:
		return nil, err
	}

	raw, err := uc.RestoreBackup(ctx, blob)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("backup decrypted",
		slog.String("path", filepath.Join(dir, domain.ArtifactFileName)),
		slog.Int("size", len(raw)),
	)
	return raw, nil
}

// readAndVerify loads the artifact and compares it with the sidecar. The blob is
// returned whenever it could be read, even on a mismatch.
func (uc *backupUseCase) readAndVerify(dir string) ([]byte, *domain.Verification, error) {
	path := filepath.Join(dir, domain.ArtifactFileName)
	blob, err := service.ReadFileIfExists(path, domain.ErrArtifactMissing)
	if err != nil {
		return nil, nil, err
	}

	verification := &domain.Verification{Path: path, Actual: uc.Digest(blob)}

	sidecar, err := service.ReadFileIfExists(filepath.Join(dir, domain.SidecarFileName), domain.ErrSidecarMissing)
	if err != nil {
		return blob, verification, err
	}
	verification.Expected = strings.TrimSpace(string(sidecar))

	expected, err := cryptoDomain.ParseDigest(verification.Expected)
	if err != nil || !uc.Matches(blob, expected) {
		uc.logger.Warn("backup integrity mismatch",
			slog.String("path", path),
			slog.String("actual", verification.Actual.String()),
		)
		return blob, verification, domain.ErrIntegrityMismatch
	}

	verification.OK = true
	return blob, verification, nil
}
