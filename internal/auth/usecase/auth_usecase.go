// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	authService "github.com/allisson/piiguard/internal/auth/service"
	apperrors "github.com/allisson/piiguard/internal/errors"
	piiService "github.com/allisson/piiguard/internal/pii/service"
	userDomain "github.com/allisson/piiguard/internal/user/domain"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	credentials  CredentialRepository
	passwordSvc  authService.PasswordService
	tokenService authService.TokenService
	redactor     *piiService.Redactor
	logger       *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	credentials CredentialRepository,
	passwordSvc authService.PasswordService,
	tokenService authService.TokenService,
	redactor *piiService.Redactor,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		credentials:  credentials,
		passwordSvc:  passwordSvc,
		tokenService: tokenService,
		redactor:     redactor,
		logger:       logger,
	}
}

func (a *authUseCase) Authenticate(
	ctx context.Context,
	userID, password string,
) (*authDomain.LoginOutput, error) {
	if userID == "" || password == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "user_id and password are required")
	}

	userFP := a.redactor.LogFingerprint(&userID)

	user, err := a.credentials.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			a.logger.Warn("invalid login", slog.String("user_fp", userFP))
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordSvc.Verify(password, user.PasswordHash) {
		a.logger.Warn("invalid login", slog.String("user_fp", userFP))
		return nil, authDomain.ErrInvalidCredentials
	}

	if a.passwordSvc.NeedsRehash(user.PasswordHash) {
		if err := a.rehash(ctx, user.ID, password); err != nil {
			return nil, err
		}
		a.logger.Info("password hash upgraded", slog.String("user_fp", userFP))
	}

	issued, err := a.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	a.logger.Info("user logged in",
		slog.String("user_fp", userFP),
		slog.String("role", user.Role.String()),
	)

	return &authDomain.LoginOutput{
		Principal: authDomain.Principal{Subject: user.ID, Role: user.Role},
		Token:     *issued,
	}, nil
}

func (a *authUseCase) rehash(ctx context.Context, userID, password string) error {
	hash, err := a.passwordSvc.Hash(password)
	if err != nil {
		return apperrors.Wrap(err, "failed to rehash password")
	}
	if err := a.credentials.Update(ctx, userID, userDomain.UserPatch{PasswordHash: &hash}); err != nil {
		return apperrors.Wrap(err, "failed to store rehashed password")
	}
	return nil
}

func (a *authUseCase) Authorize(
	ctx context.Context,
	token string,
	allowed ...authDomain.Role,
) (*authDomain.Principal, error) {
	if token == "" {
		return nil, authDomain.ErrTokenInvalid
	}

	principal, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	if len(allowed) > 0 && !principal.Role.In(allowed...) {
		return nil, authDomain.ErrRoleNotAllowed
	}

	return principal, nil
}
