// Package service runs the external dump and replay commands and writes backup files.
package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/allisson/piiguard/internal/backup/domain"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

// Dumper produces a raw database dump.
type Dumper interface {
	Dump(ctx context.Context) ([]byte, error)
}

// Replayer feeds a raw dump back into the database.
type Replayer interface {
	Replay(ctx context.Context, dump []byte) error
}

// CommandRunner shells out to database client tools such as mysqldump and mysql.
// Commands are split on whitespace and run without a shell.
type CommandRunner struct {
	dumpCommand    []string
	restoreCommand []string
}

// NewCommandRunner creates a runner for the given command lines. Either may be empty.
func NewCommandRunner(dumpCommand, restoreCommand string) *CommandRunner {
	return &CommandRunner{
		dumpCommand:    strings.Fields(dumpCommand),
		restoreCommand: strings.Fields(restoreCommand),
	}
}

// CanReplay reports whether a restore command is configured.
func (r *CommandRunner) CanReplay() bool {
	return len(r.restoreCommand) > 0
}

// Dump runs the dump command and returns its stdout.
func (r *CommandRunner) Dump(ctx context.Context) ([]byte, error) {
	if len(r.dumpCommand) == 0 {
		return nil, domain.ErrNoDumpCommand
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.dumpCommand[0], r.dumpCommand[1:]...) //nolint:gosec // operator-supplied
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(r.dumpCommand[0], err, &stderr)
	}
	if stdout.Len() == 0 {
		return nil, domain.ErrEmptyDump
	}
	return stdout.Bytes(), nil
}

// Replay runs the restore command with dump on stdin.
func (r *CommandRunner) Replay(ctx context.Context, dump []byte) error {
	if len(r.restoreCommand) == 0 {
		return apperrors.Wrap(apperrors.ErrConfiguration, "BACKUP_RESTORE_COMMAND is not set")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.restoreCommand[0], r.restoreCommand[1:]...) //nolint:gosec // operator-supplied
	cmd.Stdin = bytes.NewReader(dump)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return commandError(r.restoreCommand[0], err, &stderr)
	}
	return nil
}

func commandError(name string, err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return fmt.Errorf("%s failed: %w: %s", name, err, msg)
}
