package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/piiguard/internal/backup/domain"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
)

// RunVerifyBackup compares the artifact in dir with its recorded SHA-256. It
// prints OK on a match and a WARNING otherwise; a mismatch is also returned as
// an error so the process exits non-zero.
func RunVerifyBackup(
	ctx context.Context,
	useCase backupUseCase.BackupUseCase,
	logger *slog.Logger,
	dir, format string,
	streams IOTuple,
) error {
	verification, err := useCase.Verify(ctx, dir)
	if err != nil && !errors.Is(err, domain.ErrIntegrityMismatch) {
		return err
	}

	output := map[string]any{
		"path":     verification.Path,
		"expected": verification.Expected,
		"actual":   verification.Actual.String(),
		"ok":       verification.OK,
	}
	writeErr := writeOutput(streams.Writer, format, output, func(w io.Writer) {
		if verification.OK {
			_, _ = fmt.Fprintf(w, "OK: %s matches %s\n", verification.Path, verification.Actual)
			return
		}
		_, _ = fmt.Fprintf(w, "WARNING: %s does not match its recorded hash\n", verification.Path)
		_, _ = fmt.Fprintf(w, "  expected: %s\n", verification.Expected)
		_, _ = fmt.Fprintf(w, "  actual:   %s\n", verification.Actual)
	})
	if writeErr != nil {
		return writeErr
	}

	if !verification.OK {
		logger.Warn("backup verification failed", slog.String("path", verification.Path))
		return domain.ErrIntegrityMismatch
	}
	return nil
}
