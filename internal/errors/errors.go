// Package errors holds the sentinel errors every layer wraps. Handlers map them to
// HTTP statuses and the CLI maps them to exit codes, so domain packages never
// return driver or crypto library errors directly.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate id or email.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers bad credentials and invalid or expired session tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller's role is not allowed on the route.
	ErrForbidden = errors.New("forbidden")

	// ErrConfiguration indicates required keys, secrets or settings are missing or unusable.
	// It is fatal at startup and never recoverable per request.
	ErrConfiguration = errors.New("configuration error")
)

// New creates an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
