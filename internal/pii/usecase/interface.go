// Package usecase exposes field protection and redaction to the rest of the service.
package usecase

import (
	"context"

	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
)

// UseCase protects, reveals and redacts personal data.
//
// A nil *string always means the value is absent. Absent values are never an error:
// ProtectField and RevealField return nil for nil input.
type UseCase interface {
	// ProtectField encrypts plaintext for storage.
	ProtectField(ctx context.Context, plaintext *string) (*string, error)

	// RevealField decrypts a stored value. A stored value that cannot be decrypted
	// returns (nil, ErrDecryptionFailed) so callers can tell it apart from absence.
	RevealField(ctx context.Context, field *string) (*string, error)

	// RedactForOutput masks plaintext according to kind.
	RedactForOutput(plaintext *string, kind piiDomain.Kind) string

	// RevealAndRedact decrypts a stored value and masks it. Values that cannot be
	// decrypted render as the unreadable placeholder and never fail the caller.
	RevealAndRedact(ctx context.Context, field *string, kind piiDomain.Kind) string
}
