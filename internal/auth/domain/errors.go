package domain

import (
	"github.com/allisson/piiguard/internal/errors"
)

// Authentication and authorization errors.
//
// Every authentication failure wraps ErrUnauthorized so the HTTP layer answers 401
// without telling the caller which check failed.
var (
	// ErrInvalidCredentials covers both an unknown user id and a wrong password.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenExpired indicates a well-formed, correctly signed token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates a token with a bad signature, algorithm, structure or role.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrRoleNotAllowed indicates a valid token whose role is outside the allowed set.
	ErrRoleNotAllowed = errors.Wrap(errors.ErrForbidden, "forbidden for role")

	// ErrInvalidRole indicates a role name outside the closed enumeration.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
