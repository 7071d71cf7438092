package usecase

import (
	"context"
	"time"

	"github.com/allisson/piiguard/internal/metrics"
	"github.com/allisson/piiguard/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, u.metrics, "user", operation, start, err)
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, input CreateUserInput) (*domain.UserView, error) {
	start := time.Now()
	view, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return view, err
}

// Get records metrics for user retrieval.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id string) (*domain.UserView, error) {
	start := time.Now()
	view, err := u.next.Get(ctx, id)
	u.record(ctx, "user_get", start, err)
	return view, err
}

// List records metrics for user listing.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.UserView, error) {
	start := time.Now()
	views, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return views, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(ctx context.Context, id string, input UpdateUserInput) error {
	start := time.Now()
	err := u.next.Update(ctx, id, input)
	u.record(ctx, "user_update", start, err)
	return err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "user_delete", start, err)
	return err
}
