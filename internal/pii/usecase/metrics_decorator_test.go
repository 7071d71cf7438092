package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
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

func TestPIIUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("ProtectAndRevealSuccess", func(t *testing.T) {
		m := &mockBusinessMetrics{}
		m.On("RecordOperation", ctx, "pii", "protect_field", "success").Once()
		m.On("RecordDuration", ctx, "pii", "protect_field", mock.AnythingOfType("time.Duration"), "success").Once()
		m.On("RecordOperation", ctx, "pii", "reveal_field", "success").Once()
		m.On("RecordDuration", ctx, "pii", "reveal_field", mock.AnythingOfType("time.Duration"), "success").Once()

		uc := NewPIIUseCaseWithMetrics(newRealUseCase(t), m)
		field, err := uc.ProtectField(ctx, ptr("jane@example.com"))
		require.NoError(t, err)
		out, err := uc.RevealField(ctx, field)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", *out)

		m.AssertExpectations(t)
	})

	t.Run("RevealAndRedactUnreadable", func(t *testing.T) {
		m := &mockBusinessMetrics{}
		m.On("RecordOperation", ctx, "pii", "reveal_and_redact", "unreadable").Once()
		m.On("RecordDuration", ctx, "pii", "reveal_and_redact", mock.AnythingOfType("time.Duration"), "unreadable").Once()

		uc := NewPIIUseCaseWithMetrics(newRealUseCase(t), m)
		assert.Equal(t, piiDomain.Unreadable, uc.RevealAndRedact(ctx, ptr("garbage"), piiDomain.KindEmail))

		m.AssertExpectations(t)
	})

	t.Run("RedactForOutputNotInstrumented", func(t *testing.T) {
		m := &mockBusinessMetrics{}
		uc := NewPIIUseCaseWithMetrics(newRealUseCase(t), m)
		assert.Equal(t, "J***", uc.RedactForOutput(ptr("Jane"), piiDomain.KindName))
		m.AssertNotCalled(t, "RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
