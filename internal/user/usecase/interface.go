// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/allisson/piiguard/internal/user/domain"
)

// CreateUserInput contains the plaintext data for a new user.
type CreateUserInput struct {
	// ID is optional; an empty value gets a generated UUIDv7.
	ID       string
	Email    string
	Password string
	FullName string
	// Role is optional and defaults to "user".
	Role string
}

// UpdateUserInput lists the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	Role     *string
}

// UserRepository defines persistence operations for users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) error
	Delete(ctx context.Context, id string) error
}

// UseCase defines the interface for user business logic operations.
//
// Every read returns a UserView: personal fields are decrypted and masked, and a
// field that cannot be decrypted renders as the unreadable placeholder.
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.UserView, error)
	Get(ctx context.Context, id string) (*domain.UserView, error)
	List(ctx context.Context, offset, limit int) ([]*domain.UserView, error)
	Update(ctx context.Context, id string, input UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
