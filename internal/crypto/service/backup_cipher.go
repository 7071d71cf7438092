package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// framedHeaderSize is magic(4) + version(1) + wrapped key length(2).
const framedHeaderSize = len(cryptoDomain.BackupMagic) + 1 + 2

// BackupCipher performs hybrid encryption of database dumps.
//
// The payload is encrypted with AES-256-CBC under the key store's symmetric key,
// and that key is wrapped with RSA-OAEP (SHA-256, empty label) under the public key.
// Artifacts are framed as:
//
//	"PIIB" || 0x01 || uint16 BE len(wrappedKey) || wrappedKey || IV || ciphertext
//
// Decrypt also reads the unframed layout wrappedKey || "---" || IV || ciphertext,
// locating the separator by the private key's modulus size.
type BackupCipher struct {
	keys KeyStore
}

// NewBackupCipher creates a BackupCipher backed by keys.
func NewBackupCipher(keys KeyStore) *BackupCipher {
	return &BackupCipher{keys: keys}
}

// Encrypt returns the framed artifact for raw.
func (b *BackupCipher) Encrypt(ctx context.Context, raw []byte) ([]byte, error) {
	key, err := b.keys.SymmetricKey(ctx)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	c, err := NewAESCBC(key)
	if err != nil {
		return nil, err
	}
	sealed, err := c.Seal(raw)
	if err != nil {
		return nil, err
	}

	wrapped, err := wrapKey(b.keys, key)
	if err != nil {
		return nil, err
	}
	if len(wrapped) > math.MaxUint16 {
		return nil, fmt.Errorf("wrapped key too large: %d bytes", len(wrapped))
	}

	out := make([]byte, 0, framedHeaderSize+len(wrapped)+len(sealed))
	out = append(out, cryptoDomain.BackupMagic...)
	out = append(out, cryptoDomain.BackupVersion)
	out = binary.BigEndian.AppendUint16(out, uint16(len(wrapped)))
	out = append(out, wrapped...)
	out = append(out, sealed...)
	return out, nil
}

// Decrypt recovers the dump from an artifact. It returns ErrUnwrapFailed when the
// wrapped key cannot be located or opened and ErrDecryptionFailed when the payload
// cannot be decrypted. Nothing is returned on partial success.
func (b *BackupCipher) Decrypt(ctx context.Context, blob []byte) ([]byte, error) {
	priv, err := b.keys.PrivateKey()
	if err != nil {
		return nil, err
	}

	wrapped, payload, err := splitBackup(blob, priv.Size())
	if err != nil {
		return nil, err
	}

	key, err := unwrapKey(priv, wrapped)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	c, err := NewAESCBC(key)
	if err != nil {
		return nil, cryptoDomain.ErrUnwrapFailed
	}
	return c.Open(payload)
}

// splitBackup separates the wrapped key from IV || ciphertext.
func splitBackup(blob []byte, modulusSize int) (wrapped, payload []byte, err error) {
	if bytes.HasPrefix(blob, []byte(cryptoDomain.BackupMagic)) {
		if len(blob) < framedHeaderSize {
			return nil, nil, cryptoDomain.ErrUnwrapFailed
		}
		if v := blob[len(cryptoDomain.BackupMagic)]; v != cryptoDomain.BackupVersion {
			return nil, nil, fmt.Errorf("backup version %d: %w", v, cryptoDomain.ErrUnsupportedVersion)
		}
		n := int(binary.BigEndian.Uint16(blob[len(cryptoDomain.BackupMagic)+1:]))
		rest := blob[framedHeaderSize:]
		if len(rest) < n {
			return nil, nil, cryptoDomain.ErrUnwrapFailed
		}
		return rest[:n], rest[n:], nil
	}

	sep := len(cryptoDomain.LegacyBackupSeparator)
	if len(blob) < modulusSize+sep ||
		string(blob[modulusSize:modulusSize+sep]) != cryptoDomain.LegacyBackupSeparator {
		return nil, nil, cryptoDomain.ErrUnwrapFailed
	}
	return blob[:modulusSize], blob[modulusSize+sep:], nil
}

func wrapKey(keys KeyStore, key []byte) ([]byte, error) {
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, keys.PublicKey(), key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap backup key: %w", err)
	}
	return wrapped, nil
}

func unwrapKey(priv *rsa.PrivateKey, wrapped []byte) ([]byte, error) {
	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil || len(key) != cryptoDomain.SymmetricKeySize {
		return nil, cryptoDomain.ErrUnwrapFailed
	}
	return key, nil
}
