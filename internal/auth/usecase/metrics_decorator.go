package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	"github.com/allisson/piiguard/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for login attempts.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	userID, password string,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Authenticate(ctx, userID, password)
	metrics.Observe(ctx, a.metrics, "auth", "login", start, err)
	return output, err
}

// Authorize records metrics for token checks.
func (a *authUseCaseWithMetrics) Authorize(
	ctx context.Context,
	token string,
	allowed ...authDomain.Role,
) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := a.next.Authorize(ctx, token, allowed...)
	metrics.Observe(ctx, a.metrics, "auth", "authorize", start, err)
	return principal, err
}
