// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	"github.com/allisson/piiguard/internal/errors"
)

// User is a stored account. Email and FullName hold encrypted field values, never
// plaintext; nil means the column is NULL.
type User struct {
	ID           string
	Email        *string
	FullName     *string
	PasswordHash string
	Role         authDomain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView is the display-safe projection of a User. Email and FullName are masked.
type UserView struct {
	ID        string
	Email     string
	FullName  string
	Role      authDomain.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch lists the stored columns to overwrite. Nil fields are left unchanged.
type UserPatch struct {
	Email        *string
	FullName     *string
	PasswordHash *string
	Role         *authDomain.Role
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FullName == nil && p.PasswordHash == nil && p.Role == nil
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same id already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrNoFieldsToUpdate indicates an update request without any updatable field.
	ErrNoFieldsToUpdate = errors.Wrap(errors.ErrInvalidInput, "no valid fields to update")
)
