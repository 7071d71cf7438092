package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
)

// identifierRegex matches caller-supplied record ids.
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9._\-]{1,64}$`)

// Identifier validates a record id: 1 to 64 letters, digits, '.', '_' or '-'.
var Identifier = validation.NewStringRuleWithError(
	func(s string) bool {
		return identifierRegex.MatchString(s)
	},
	validation.NewError("validation_identifier", "must be 1-64 letters, digits, '.', '_' or '-'"),
)

// Role validates that a string names a known role.
var Role = validation.By(func(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_role_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := authDomain.ParseRole(s); err != nil {
		return validation.NewError("validation_role", "must be one of: admin, user")
	}
	return nil
})
