package domain

import (
	"encoding/hex"
	"strings"
)

// DigestSize is the length in bytes of a SHA-256 digest.
const DigestSize = 32

// Digest is the SHA-256 content hash of a backup artifact.
type Digest [DigestSize]byte

// String returns the lowercase hex form stored in the sidecar file.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a hex digest, ignoring surrounding whitespace and case.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	raw, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || len(raw) != DigestSize {
		return d, ErrInvalidDigest
	}
	copy(d[:], raw)
	return d, nil
}
