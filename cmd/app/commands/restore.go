package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	backupService "github.com/allisson/piiguard/internal/backup/service"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
)

const restoredDumpPerm = 0o600

// RestoreParams are the restore flags.
type RestoreParams struct {
	Dir string
	// OutputPath receives the decrypted dump when set.
	OutputPath string
	SkipVerify bool
}

// RunRestore decrypts the backup in dir and hands the dump to its targets: the
// output file, the replayer, or both. replayer may be nil.
//
// Every stage runs before anything is written. An integrity mismatch or a decrypt
// failure leaves no output file and replays nothing.
func RunRestore(
	ctx context.Context,
	useCase backupUseCase.BackupUseCase,
	replayer backupService.Replayer,
	logger *slog.Logger,
	params RestoreParams,
	streams IOTuple,
) error {
	if params.OutputPath == "" && replayer == nil {
		return fmt.Errorf("nothing to restore into: set --output or BACKUP_RESTORE_COMMAND")
	}

	raw, err := useCase.Restore(ctx, params.Dir, params.SkipVerify)
	if err != nil {
		return fmt.Errorf("restore aborted: %w", err)
	}

	if params.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(params.OutputPath), 0o700); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := backupService.WriteFileAtomic(params.OutputPath, raw, restoredDumpPerm); err != nil {
			return fmt.Errorf("failed to write restored dump: %w", err)
		}
		_, _ = fmt.Fprintf(streams.Writer, "Decrypted dump written to %s (%d bytes)\n", params.OutputPath, len(raw))
	}

	if replayer != nil {
		logger.Info("replaying restored dump", slog.Int("size", len(raw)))
		if err := replayer.Replay(ctx, raw); err != nil {
			return fmt.Errorf("failed to replay dump: %w", err)
		}
		_, _ = fmt.Fprintln(streams.Writer, "Database restored")
	}

	return nil
}
