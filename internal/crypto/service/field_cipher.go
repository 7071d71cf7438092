package service

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// FieldCipher encrypts PII column values with the key store's symmetric key.
//
// Encrypt writes "v1:" followed by base64(IV || ciphertext). Decrypt also reads
// the untagged legacy form, which is the same body without the prefix.
type FieldCipher struct {
	keys KeyStore
}

// NewFieldCipher creates a FieldCipher backed by keys.
func NewFieldCipher(keys KeyStore) *FieldCipher {
	return &FieldCipher{keys: keys}
}

// Encrypt returns a fresh encrypted field for plaintext. Two calls never return
// the same value for the same input.
func (f *FieldCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	c, err := f.cipher(ctx)
	if err != nil {
		return "", err
	}

	sealed, err := c.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}

	return cryptoDomain.FieldVersionPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt recovers the plaintext of field. Malformed, truncated or wrong-key values
// return ErrDecryptionFailed; an unknown version tag returns ErrUnsupportedVersion.
// Key store failures are returned unchanged.
func (f *FieldCipher) Decrypt(ctx context.Context, field string) (string, error) {
	body, err := stripFieldVersion(field)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	c, err := f.cipher(ctx)
	if err != nil {
		return "", err
	}

	plaintext, err := c.Open(raw)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

func (f *FieldCipher) cipher(ctx context.Context) (*AESCBCCipher, error) {
	key, err := f.keys.SymmetricKey(ctx)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return NewAESCBC(key)
}

// stripFieldVersion removes a known version tag. The base64 alphabet has no ':'
// so any colon marks a tag.
func stripFieldVersion(field string) (string, error) {
	tag, body, tagged := strings.Cut(field, ":")
	if !tagged {
		return field, nil
	}
	if tag+":" != cryptoDomain.FieldVersionPrefix {
		return "", cryptoDomain.ErrUnsupportedVersion
	}
	return body, nil
}
