package app

import (
	"fmt"

	backupService "github.com/allisson/piiguard/internal/backup/service"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
)

// CommandRunner runs BACKUP_DUMP_COMMAND and BACKUP_RESTORE_COMMAND.
func (c *Container) CommandRunner() *backupService.CommandRunner {
	return c.commandRunner.value(func() *backupService.CommandRunner {
		return backupService.NewCommandRunner(c.config.BackupDumpCommand, c.config.BackupRestoreCommand)
	})
}

// BackupUseCase needs the key store but no database connection.
func (c *Container) BackupUseCase() (backupUseCase.BackupUseCase, error) {
	return c.backupUseCase.get(func() (backupUseCase.BackupUseCase, error) {
		keys, err := c.KeyStore()
		if err != nil {
			return nil, fmt.Errorf("failed to get key store for backup use case: %w", err)
		}
		return backupUseCase.NewBackupUseCase(
			cryptoService.NewBackupCipher(keys),
			cryptoService.NewIntegrityVerifier(),
			c.Logger(),
		), nil
	})
}
