package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/youmark/pkcs8"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

// KeyStoreConfig locates the key material on disk.
type KeyStoreConfig struct {
	SymmetricKeyPath     string
	PublicKeyPath        string
	PrivateKeyPath       string
	PrivateKeyPassphrase string

	// Keeper seals the symmetric key file when set. The file then holds the
	// keeper's ciphertext instead of the raw 32 bytes.
	Keeper cryptoDomain.KMSKeeper
}

// FileKeyStore keeps the symmetric key in a single file and the RSA pair in PEM files.
//
// The RSA pair is loaded once by NewFileKeyStore and never changes. The symmetric
// key is loaded or created on first use. Creation links a fully written temp file
// into place, so concurrent creators (goroutines or processes) agree on whichever
// file landed first.
type FileKeyStore struct {
	cfg        KeyStoreConfig
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey

	mu           sync.Mutex
	symmetricKey []byte
}

// NewFileKeyStore loads the RSA key pair. The public key is required. A private key
// file that does not exist leaves the store in encrypt-only mode.
func NewFileKeyStore(cfg KeyStoreConfig) (*FileKeyStore, error) {
	if cfg.SymmetricKeyPath == "" {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "symmetric key path is empty")
	}

	publicKey, err := loadPublicKey(cfg.PublicKeyPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey(cfg.PrivateKeyPath, cfg.PrivateKeyPassphrase)
	if err != nil {
		return nil, err
	}
	if privateKey != nil && !privateKey.PublicKey.Equal(publicKey) {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "private key does not match public key")
	}

	return &FileKeyStore{
		cfg:        cfg,
		publicKey:  publicKey,
		privateKey: privateKey,
	}, nil
}

// PublicKey returns the backup wrapping key.
func (k *FileKeyStore) PublicKey() *rsa.PublicKey {
	return k.publicKey
}

// PrivateKey returns the backup unwrapping key.
func (k *FileKeyStore) PrivateKey() (*rsa.PrivateKey, error) {
	if k.privateKey == nil {
		return nil, cryptoDomain.ErrPrivateKeyUnavailable
	}
	return k.privateKey, nil
}

// SymmetricKey returns a copy of the field key.
func (k *FileKeyStore) SymmetricKey(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.symmetricKey == nil {
		key, err := k.loadOrCreate(ctx)
		if err != nil {
			return nil, err
		}
		k.symmetricKey = key
	}

	out := make([]byte, len(k.symmetricKey))
	copy(out, k.symmetricKey)
	return out, nil
}

func (k *FileKeyStore) loadOrCreate(ctx context.Context) ([]byte, error) {
	key, err := k.readSymmetricKey(ctx)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	key = make([]byte, cryptoDomain.SymmetricKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate symmetric key: %w", err)
	}

	stored := key
	if k.cfg.Keeper != nil {
		stored, err = k.cfg.Keeper.Encrypt(ctx, key)
		if err != nil {
			cryptoDomain.Zero(key)
			return nil, fmt.Errorf("failed to seal symmetric key: %w", err)
		}
	}

	created, err := createExclusive(k.cfg.SymmetricKeyPath, stored)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, err
	}
	if !created {
		// Another writer won the race; its key is the only valid one.
		cryptoDomain.Zero(key)
		return k.readSymmetricKey(ctx)
	}
	return key, nil
}

func (k *FileKeyStore) readSymmetricKey(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(k.cfg.SymmetricKeyPath)
	if err != nil {
		return nil, err
	}

	if k.cfg.Keeper != nil {
		data, err = k.cfg.Keeper.Decrypt(ctx, data)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "failed to open sealed key %s: %v", k.cfg.SymmetricKeyPath, err)
		}
	}

	if len(data) != cryptoDomain.SymmetricKeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	return data, nil
}

// createExclusive writes data to path only if path does not exist yet. It reports
// false without error when another writer created path first. Readers never see a
// partially written file.
func createExclusive(path string, data []byte) (bool, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return false, fmt.Errorf("failed to create key directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return false, fmt.Errorf("failed to create temp key file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("failed to write temp key file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("failed to sync temp key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("failed to close temp key file: %w", err)
	}

	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to persist key file: %w", err)
	}
	return true, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	if path == "" {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "public key path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "failed to read public key: %v", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "no PEM block in %s", path)
	}

	switch block.Type {
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "invalid public key: %v", err)
		}
		return pub, nil
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "invalid public key: %v", err)
		}
		pub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "public key is not RSA")
		}
		return pub, nil
	default:
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "unexpected PEM block %q", block.Type)
	}
}

func loadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "failed to read private key: %v", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "no PEM block in %s", path)
	}

	var parsed any
	switch block.Type {
	case "RSA PRIVATE KEY":
		parsed, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		parsed, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case "ENCRYPTED PRIVATE KEY":
		if passphrase == "" {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "private key is encrypted and no passphrase is set")
		}
		parsed, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
	default:
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "unexpected PEM block %q", block.Type)
	}
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfiguration, "invalid private key: %v", err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "private key is not RSA")
	}
	return priv, nil
}
