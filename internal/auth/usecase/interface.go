// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	userDomain "github.com/allisson/piiguard/internal/user/domain"
)

// CredentialRepository reads stored password hashes and upgrades legacy ones.
// Implementations must support transaction-aware operations via context propagation.
type CredentialRepository interface {
	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id string) (*userDomain.User, error)

	// Update overwrites the columns set in patch.
	Update(ctx context.Context, id string, patch userDomain.UserPatch) error
}

// AuthUseCase authenticates users and authorizes session tokens.
type AuthUseCase interface {
	// Authenticate checks userID and password and issues a session token.
	//
	// An unknown user and a wrong password both return ErrInvalidCredentials so
	// callers cannot enumerate accounts. A legacy password hash is replaced with
	// a current one after a successful check.
	Authenticate(ctx context.Context, userID, password string) (*authDomain.LoginOutput, error)

	// Authorize verifies token and checks its role against allowed. An empty
	// allowed list accepts any valid role.
	//
	// Returns ErrTokenExpired or ErrTokenInvalid (both 401) when the token is not
	// usable, and ErrRoleNotAllowed (403) when the role is outside allowed.
	Authorize(ctx context.Context, token string, allowed ...authDomain.Role) (*authDomain.Principal, error)
}
