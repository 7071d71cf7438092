package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/allisson/piiguard/internal/backup/domain"
	backupService "github.com/allisson/piiguard/internal/backup/service"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
)

// BackupParams are the backup flags.
type BackupParams struct {
	// InputPath is an existing plaintext dump. When empty the dumper is run.
	InputPath string
	Dir       string
	Format    string
}

// RunBackup encrypts a database dump into dir. The dump comes from InputPath or,
// when that is empty, from dumper. A nil dumper without InputPath is a
// configuration error.
func RunBackup(
	ctx context.Context,
	useCase backupUseCase.BackupUseCase,
	dumper backupService.Dumper,
	logger *slog.Logger,
	params BackupParams,
	streams IOTuple,
) error {
	var (
		raw []byte
		err error
	)

	switch {
	case params.InputPath != "":
		raw, err = os.ReadFile(params.InputPath)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file %s does not exist", params.InputPath)
		}
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	case dumper != nil:
		logger.Info("running database dump")
		raw, err = dumper.Dump(ctx)
		if err != nil {
			return fmt.Errorf("failed to dump database: %w", err)
		}
	default:
		return domain.ErrNoDumpCommand
	}

	artifact, err := useCase.Create(ctx, raw, params.Dir)
	if err != nil {
		return err
	}

	output := map[string]any{
		"path":   artifact.Path,
		"hash":   artifact.SidecarPath,
		"sha256": artifact.Digest.String(),
		"size":   artifact.Size,
	}
	return writeOutput(streams.Writer, params.Format, output, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Backup written to %s (%d bytes)\n", artifact.Path, artifact.Size)
		_, _ = fmt.Fprintf(w, "SHA-256 %s recorded in %s\n", artifact.Digest, artifact.SidecarPath)
	})
}
