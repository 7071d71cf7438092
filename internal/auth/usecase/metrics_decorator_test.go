package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	userDomain "github.com/allisson/piiguard/internal/user/domain"
)

// mockBusinessMetrics is a mock implementation of BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("LoginFailureRecordedAsRejected", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.On("GetByID", ctx, "ghost").Return(nil, userDomain.ErrUserNotFound).Once()

		m := &mockBusinessMetrics{}
		m.On("RecordOperation", ctx, "auth", "login", "rejected").Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "rejected").Once()

		uc := NewAuthUseCaseWithMetrics(f.useCase, m)
		_, err := uc.Authenticate(ctx, "ghost", "pw")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

		m.AssertExpectations(t)
	})

	t.Run("AuthorizeSuccess", func(t *testing.T) {
		f := newAuthFixture(t)
		issued, err := f.tokens.Issue("alice", authDomain.RoleAdmin)
		assert.NoError(t, err)

		m := &mockBusinessMetrics{}
		m.On("RecordOperation", ctx, "auth", "authorize", "success").Once()
		m.On("RecordDuration", ctx, "auth", "authorize", mock.AnythingOfType("time.Duration"), "success").Once()

		uc := NewAuthUseCaseWithMetrics(f.useCase, m)
		principal, err := uc.Authorize(ctx, issued.Token, authDomain.WriteRoles...)
		assert.NoError(t, err)
		assert.Equal(t, "alice", principal.Subject)

		m.AssertExpectations(t)
	})
}
