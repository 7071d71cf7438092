package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/piiguard/internal/backup/domain"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
)

const testDump = "CREATE TABLE users (id VARCHAR(64));\nINSERT INTO users VALUES ('alice');\n"

type stubDumper struct {
	dump []byte
	err  error
}

func (s *stubDumper) Dump(context.Context) ([]byte, error) {
	return s.dump, s.err
}

type recordingReplayer struct {
	replayed []byte
	err      error
}

func (r *recordingReplayer) Replay(_ context.Context, dump []byte) error {
	r.replayed = dump
	return r.err
}

// newTestBackupUseCase wires a real backup use case over a fresh key pair.
func newTestBackupUseCase(t *testing.T) backupUseCase.BackupUseCase {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	pubPath := filepath.Join(dir, "public.pem")
	privPath := filepath.Join(dir, "private.pem")

	require.NoError(t, RunCreateKeypair(logger, CreateKeypairParams{
		PublicKeyPath:  pubPath,
		PrivateKeyPath: privPath,
		Bits:           2048,
	}, IOTuple{Writer: io.Discard}))

	keys, err := cryptoService.NewFileKeyStore(cryptoService.KeyStoreConfig{
		SymmetricKeyPath: filepath.Join(dir, "aes.key"),
		PublicKeyPath:    pubPath,
		PrivateKeyPath:   privPath,
	})
	require.NoError(t, err)

	return backupUseCase.NewBackupUseCase(
		cryptoService.NewBackupCipher(keys),
		cryptoService.NewIntegrityVerifier(),
		logger,
	)
}

func tamperArtifact(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, domain.ArtifactFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestRunBackup(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("from-input-file", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		input := filepath.Join(dir, "dump.sql")
		require.NoError(t, os.WriteFile(input, []byte(testDump), 0o600))
		backupDir := filepath.Join(dir, "backups")

		var out bytes.Buffer
		err := RunBackup(ctx, uc, nil, logger, BackupParams{InputPath: input, Dir: backupDir}, IOTuple{Writer: &out})

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(backupDir, domain.ArtifactFileName))
		assert.FileExists(t, filepath.Join(backupDir, domain.SidecarFileName))
		assert.Contains(t, out.String(), "Backup written to")
	})

	t.Run("from-dumper-json", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		backupDir := t.TempDir()

		var out bytes.Buffer
		err := RunBackup(ctx, uc, &stubDumper{dump: []byte(testDump)}, logger,
			BackupParams{Dir: backupDir, Format: "json"}, IOTuple{Writer: &out})

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"sha256"`)
	})

	t.Run("dumper-error", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		backupDir := t.TempDir()

		err := RunBackup(ctx, uc, &stubDumper{err: errors.New("mysqldump failed")}, logger,
			BackupParams{Dir: backupDir}, IOTuple{Writer: io.Discard})

		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(backupDir, domain.ArtifactFileName))
	})

	t.Run("no-source", func(t *testing.T) {
		uc := newTestBackupUseCase(t)

		err := RunBackup(ctx, uc, nil, logger, BackupParams{Dir: t.TempDir()}, IOTuple{Writer: io.Discard})

		assert.ErrorIs(t, err, domain.ErrNoDumpCommand)
	})

	t.Run("missing-input", func(t *testing.T) {
		uc := newTestBackupUseCase(t)

		err := RunBackup(ctx, uc, nil, logger,
			BackupParams{InputPath: filepath.Join(t.TempDir(), "nope.sql"), Dir: t.TempDir()},
			IOTuple{Writer: io.Discard})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestRunVerifyBackup(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("ok", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)

		var out bytes.Buffer
		err = RunVerifyBackup(ctx, uc, logger, dir, "text", IOTuple{Writer: &out})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "OK:")
	})

	t.Run("mismatch", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)
		tamperArtifact(t, dir)

		var out bytes.Buffer
		err = RunVerifyBackup(ctx, uc, logger, dir, "text", IOTuple{Writer: &out})

		assert.ErrorIs(t, err, domain.ErrIntegrityMismatch)
		assert.Contains(t, out.String(), "WARNING:")
	})

	t.Run("missing-artifact", func(t *testing.T) {
		uc := newTestBackupUseCase(t)

		err := RunVerifyBackup(ctx, uc, logger, t.TempDir(), "text", IOTuple{Writer: io.Discard})

		assert.ErrorIs(t, err, domain.ErrArtifactMissing)
	})
}

func TestRunRestore(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("writes-output", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)
		output := filepath.Join(t.TempDir(), "restored", "dump.sql")

		err = RunRestore(ctx, uc, nil, logger, RestoreParams{Dir: dir, OutputPath: output}, IOTuple{Writer: io.Discard})

		require.NoError(t, err)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, testDump, string(data))
	})

	t.Run("replays", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)
		replayer := &recordingReplayer{}

		err = RunRestore(ctx, uc, replayer, logger, RestoreParams{Dir: dir}, IOTuple{Writer: io.Discard})

		require.NoError(t, err)
		assert.Equal(t, testDump, string(replayer.replayed))
	})

	t.Run("mismatch-halts", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)
		tamperArtifact(t, dir)
		output := filepath.Join(t.TempDir(), "dump.sql")
		replayer := &recordingReplayer{}

		err = RunRestore(ctx, uc, replayer, logger, RestoreParams{Dir: dir, OutputPath: output}, IOTuple{Writer: io.Discard})

		assert.ErrorIs(t, err, domain.ErrIntegrityMismatch)
		assert.NoFileExists(t, output)
		assert.Nil(t, replayer.replayed)
	})

	t.Run("skip-verify-with-stale-sidecar", func(t *testing.T) {
		uc := newTestBackupUseCase(t)
		dir := t.TempDir()
		_, err := uc.Create(ctx, []byte(testDump), dir)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SidecarFileName), []byte("stale\n"), 0o600))
		output := filepath.Join(t.TempDir(), "dump.sql")

		err = RunRestore(ctx, uc, nil, logger,
			RestoreParams{Dir: dir, OutputPath: output, SkipVerify: true}, IOTuple{Writer: io.Discard})

		require.NoError(t, err)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, testDump, string(data))
	})

	t.Run("no-target", func(t *testing.T) {
		uc := newTestBackupUseCase(t)

		err := RunRestore(ctx, uc, nil, logger, RestoreParams{Dir: t.TempDir()}, IOTuple{Writer: io.Discard})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to restore into")
	})
}
