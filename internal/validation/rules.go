// Package validation provides the jellydator rules shared by request DTOs and use cases.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/piiguard/internal/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// WrapValidationError turns a jellydator error into ErrInvalidInput so handlers answer 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength is a rule for account passwords. MinLength counts runes.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

type runeClasses struct {
	upper, lower, number, special bool
}

func classify(s string) runeClasses {
	var c runeClasses
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsNumber(r):
			c.number = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			c.special = true
		}
	}
	return c
}

// Validate implements validation.Rule. Nil values pass; pair with Required when needed.
func (p PasswordStrength) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if utf8.RuneCountInString(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			"password must be at least "+strconv.Itoa(p.MinLength)+" characters",
		)
	}

	c := classify(s)
	switch {
	case p.RequireUpper && !c.upper:
		return validation.NewError("validation_password_uppercase", "password must contain an uppercase letter")
	case p.RequireLower && !c.lower:
		return validation.NewError("validation_password_lowercase", "password must contain a lowercase letter")
	case p.RequireNumber && !c.number:
		return validation.NewError("validation_password_number", "password must contain a number")
	case p.RequireSpecial && !c.special:
		return validation.NewError("validation_password_special", "password must contain a special character")
	}
	return nil
}

// Email checks the address shape only. Deliverability is not checked.
var Email = validation.NewStringRuleWithError(
	emailRegex.MatchString,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank rejects strings made only of whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "must not be blank"),
)
