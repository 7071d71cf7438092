package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/piiguard/internal/feature/domain"
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

func expectRecord(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "feature", operation, status).Once()
	m.On("RecordDuration", ctx, "feature", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestFeatureRequestUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	repo := &MockFeatureRequestRepository{}
	metrics := &mockBusinessMetrics{}
	inner := NewFeatureRequestUseCase(&MockTxManager{}, repo, nil, createTestLogger())
	uc := NewFeatureRequestUseCaseWithMetrics(inner, metrics)

	repo.On("GetByID", mock.Anything, "fr-1").Return(&domain.FeatureRequest{ID: "fr-1"}, nil).Once()
	repo.On("List", mock.Anything, 0, 10).Return(nil, errors.New("db down")).Once()
	expectRecord(ctx, metrics, "feature_request_get", "success")
	expectRecord(ctx, metrics, "feature_request_list", "error")

	_, err := uc.Get(ctx, "fr-1")
	require.NoError(t, err)
	_, err = uc.List(ctx, 0, 10)
	assert.Error(t, err)

	metrics.AssertExpectations(t)
}

func TestCommentUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	repo := &MockCommentRepository{}
	metrics := &mockBusinessMetrics{}
	inner := NewCommentUseCase(&MockTxManager{}, repo, nil, createTestLogger())
	uc := NewCommentUseCaseWithMetrics(inner, metrics)

	repo.On("Delete", mock.Anything, "c-1").Return(nil).Once()
	repo.On("Delete", mock.Anything, "missing").Return(domain.ErrCommentNotFound).Once()
	expectRecord(ctx, metrics, "comment_delete", "success")
	expectRecord(ctx, metrics, "comment_delete", "rejected")

	assert.NoError(t, uc.Delete(ctx, "c-1"))
	assert.ErrorIs(t, uc.Delete(ctx, "missing"), domain.ErrCommentNotFound)

	metrics.AssertExpectations(t)
}
