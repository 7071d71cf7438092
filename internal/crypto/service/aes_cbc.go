package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
)

// AESCBCCipher encrypts with AES-256 in CBC mode and PKCS#7 padding.
//
// Output is IV(16) || ciphertext with a fresh random IV per call. There is no
// authentication tag: the layout is shared with values already at rest, so a
// flipped ciphertext bit is only detected when it breaks the padding.
//
// The cipher holds no mutable state and is safe for concurrent use.
type AESCBCCipher struct {
	block cipher.Block
}

// NewAESCBC creates a cipher for a 32-byte key.
func NewAESCBC(key []byte) (*AESCBCCipher, error) {
	if len(key) != cryptoDomain.SymmetricKeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &AESCBCCipher{block: block}, nil
}

// Seal pads and encrypts plaintext and returns IV || ciphertext.
func (c *AESCBCCipher) Seal(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, cryptoDomain.BlockSize)

	out := make([]byte, cryptoDomain.BlockSize+len(padded))
	iv := out[:cryptoDomain.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out[cryptoDomain.BlockSize:], padded)
	return out, nil
}

// Open reverses Seal. Any malformed input returns ErrDecryptionFailed.
func (c *AESCBCCipher) Open(data []byte) ([]byte, error) {
	// At least the IV plus one full block.
	if len(data) < 2*cryptoDomain.BlockSize || len(data)%cryptoDomain.BlockSize != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	iv := data[:cryptoDomain.BlockSize]
	ciphertext := data[cryptoDomain.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, cryptoDomain.BlockSize)
	if !ok {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return unpadded, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
