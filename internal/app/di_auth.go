package app

import (
	"fmt"

	authHTTP "github.com/allisson/piiguard/internal/auth/http"
	authService "github.com/allisson/piiguard/internal/auth/service"
	authUseCase "github.com/allisson/piiguard/internal/auth/usecase"
)

// PasswordService hashes with Argon2id and still verifies legacy bcrypt hashes.
func (c *Container) PasswordService() authService.PasswordService {
	return c.passwordService.value(authService.NewPasswordService)
}

// TokenService signs session tokens with TOKEN_SIGNING_SECRET.
func (c *Container) TokenService() (authService.TokenService, error) {
	return c.tokenService.get(func() (authService.TokenService, error) {
		svc, err := authService.NewTokenService(c.config.TokenSigningSecret, c.config.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create token service: %w", err)
		}
		return svc, nil
	})
}

func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	return c.authUseCase.get(func() (authUseCase.AuthUseCase, error) {
		users, err := c.UserRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
		}
		tokens, err := c.TokenService()
		if err != nil {
			return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
		}

		base := authUseCase.NewAuthUseCase(users, c.PasswordService(), tokens, c.Redactor(), c.Logger())
		return instrumented(c, base, authUseCase.NewAuthUseCaseWithMetrics)
	})
}

// AuthHandler serves POST /v1/auth/login.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	return c.authHandler.get(func() (*authHTTP.AuthHandler, error) {
		authUC, err := c.AuthUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
		}
		userUC, err := c.UserUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get user use case for auth handler: %w", err)
		}
		return authHTTP.NewAuthHandler(authUC, userUC, c.Logger()), nil
	})
}
