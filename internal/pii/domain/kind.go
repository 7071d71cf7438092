// Package domain defines the kinds of personal data the service handles and the
// placeholder strings shown in place of values that cannot be displayed.
package domain

import "fmt"

// Kind selects a redaction rule.
type Kind string

const (
	// KindEmail masks everything but the first character of the local part.
	KindEmail Kind = "email"

	// KindName masks every word after its first character.
	KindName Kind = "name"

	// KindFingerprint replaces the value with a short one-way digest for logs.
	KindFingerprint Kind = "fingerprint"
)

const (
	// Sentinel replaces absent or malformed values.
	Sentinel = "***"

	// MaskSuffix follows the characters left visible by a mask.
	MaskSuffix = "***"

	// Unreadable replaces a stored value that exists but cannot be decrypted.
	Unreadable = "<unreadable>"

	// FingerprintLength is the number of hex characters kept from the digest.
	FingerprintLength = 10
)

// ParseKind converts s to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEmail, KindName, KindFingerprint:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown pii kind %q", s)
	}
}
