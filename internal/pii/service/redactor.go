// Package service derives display-safe and log-safe forms of personal data.
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
)

// Redactor masks plaintext values. It never fails: malformed input degrades to
// the sentinel so that redaction cannot block a response.
type Redactor struct{}

// NewRedactor creates a Redactor.
func NewRedactor() *Redactor {
	return &Redactor{}
}

// MaskEmail keeps the first character of the local part and the whole domain.
// nil, empty and values without '@' return the sentinel.
func (r *Redactor) MaskEmail(value *string) string {
	if value == nil || *value == "" {
		return piiDomain.Sentinel
	}

	local, domain, ok := strings.Cut(*value, "@")
	if !ok {
		return piiDomain.Sentinel
	}
	return firstRune(local) + piiDomain.MaskSuffix + "@" + domain
}

// MaskName masks each whitespace-separated word to its first character and joins
// the results with single spaces.
func (r *Redactor) MaskName(value *string) string {
	if value == nil {
		return piiDomain.Sentinel
	}

	words := strings.Fields(*value)
	if len(words) == 0 {
		return piiDomain.Sentinel
	}

	masked := make([]string, len(words))
	for i, w := range words {
		masked[i] = firstRune(w) + piiDomain.MaskSuffix
	}
	return strings.Join(masked, " ")
}

// LogFingerprint returns the first 10 hex characters of the SHA-256 of value,
// or "" for nil and empty input.
func (r *Redactor) LogFingerprint(value *string) string {
	if value == nil || *value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(*value))
	return hex.EncodeToString(sum[:])[:piiDomain.FingerprintLength]
}

// Redact applies the rule for kind. Unknown kinds return the sentinel.
func (r *Redactor) Redact(value *string, kind piiDomain.Kind) string {
	switch kind {
	case piiDomain.KindEmail:
		return r.MaskEmail(value)
	case piiDomain.KindName:
		return r.MaskName(value)
	case piiDomain.KindFingerprint:
		return r.LogFingerprint(value)
	default:
		return piiDomain.Sentinel
	}
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
