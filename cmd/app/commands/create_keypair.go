package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/youmark/pkcs8"

	backupService "github.com/allisson/piiguard/internal/backup/service"
)

const (
	// DefaultKeyBits is the RSA modulus size used for new backup key pairs.
	DefaultKeyBits = 3072
	minKeyBits     = 2048

	publicKeyPerm  = 0o644
	privateKeyPerm = 0o600
	keyDirPerm     = 0o700
)

// CreateKeypairParams are the create-keypair flags.
type CreateKeypairParams struct {
	PublicKeyPath  string
	PrivateKeyPath string
	// Passphrase encrypts the private key as PKCS#8 when set.
	Passphrase string
	Bits       int
	// Force overwrites existing key files.
	Force bool
}

// RunCreateKeypair generates the RSA pair that wraps backup keys and writes both
// halves as PEM. Existing files are kept unless Force is set, since replacing the
// private key makes earlier backups unreadable.
func RunCreateKeypair(logger *slog.Logger, params CreateKeypairParams, streams IOTuple) error {
	bits := params.Bits
	if bits == 0 {
		bits = DefaultKeyBits
	}
	if bits < minKeyBits {
		return fmt.Errorf("key size must be at least %d bits", minKeyBits)
	}

	if !params.Force {
		for _, path := range []string{params.PublicKeyPath, params.PrivateKeyPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
		}
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return fmt.Errorf("failed to generate RSA key: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	privateBlock := &pem.Block{Type: "PRIVATE KEY"}
	if params.Passphrase != "" {
		privateBlock.Type = "ENCRYPTED PRIVATE KEY"
		privateBlock.Bytes, err = pkcs8.MarshalPrivateKey(privateKey, []byte(params.Passphrase), nil)
	} else {
		privateBlock.Bytes, err = x509.MarshalPKCS8PrivateKey(privateKey)
	}
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}
	privatePEM := pem.EncodeToMemory(privateBlock)

	for _, path := range []string{params.PublicKeyPath, params.PrivateKeyPath} {
		if err := os.MkdirAll(filepath.Dir(path), keyDirPerm); err != nil {
			return fmt.Errorf("failed to create key directory: %w", err)
		}
	}

	if err := backupService.WriteFileAtomic(params.PrivateKeyPath, privatePEM, privateKeyPerm); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := backupService.WriteFileAtomic(params.PublicKeyPath, publicPEM, publicKeyPerm); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	logger.Info("key pair created",
		slog.Int("bits", bits),
		slog.Bool("encrypted", params.Passphrase != ""),
	)

	_, _ = fmt.Fprintf(streams.Writer, "# RSA-%d key pair created\n", bits)
	_, _ = fmt.Fprintf(streams.Writer, "RSA_PUBLIC_KEY_PATH=%q\n", params.PublicKeyPath)
	_, _ = fmt.Fprintf(streams.Writer, "RSA_PRIVATE_KEY_PATH=%q\n", params.PrivateKeyPath)
	_, _ = fmt.Fprintln(streams.Writer, "# Keep the private key offline. Only restore needs it.")
	return nil
}
