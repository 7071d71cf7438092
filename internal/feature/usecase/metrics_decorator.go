package usecase

import (
	"context"
	"time"

	"github.com/allisson/piiguard/internal/feature/domain"
	"github.com/allisson/piiguard/internal/metrics"
)

func recordFeature(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	metrics.Observe(ctx, m, "feature", operation, start, err)
}

// featureRequestUseCaseWithMetrics decorates FeatureRequestUseCase with metrics instrumentation.
type featureRequestUseCaseWithMetrics struct {
	next    FeatureRequestUseCase
	metrics metrics.BusinessMetrics
}

// NewFeatureRequestUseCaseWithMetrics wraps a FeatureRequestUseCase with metrics recording.
func NewFeatureRequestUseCaseWithMetrics(
	useCase FeatureRequestUseCase,
	m metrics.BusinessMetrics,
) FeatureRequestUseCase {
	return &featureRequestUseCaseWithMetrics{next: useCase, metrics: m}
}

func (f *featureRequestUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateFeatureRequestInput,
) (*domain.FeatureRequest, error) {
	start := time.Now()
	fr, err := f.next.Create(ctx, input)
	recordFeature(ctx, f.metrics, "feature_request_create", start, err)
	return fr, err
}

func (f *featureRequestUseCaseWithMetrics) Get(ctx context.Context, id string) (*domain.FeatureRequest, error) {
	start := time.Now()
	fr, err := f.next.Get(ctx, id)
	recordFeature(ctx, f.metrics, "feature_request_get", start, err)
	return fr, err
}

func (f *featureRequestUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.FeatureRequest, error) {
	start := time.Now()
	items, err := f.next.List(ctx, offset, limit)
	recordFeature(ctx, f.metrics, "feature_request_list", start, err)
	return items, err
}

func (f *featureRequestUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	input UpdateFeatureRequestInput,
) (*domain.FeatureRequest, error) {
	start := time.Now()
	fr, err := f.next.Update(ctx, id, input)
	recordFeature(ctx, f.metrics, "feature_request_update", start, err)
	return fr, err
}

func (f *featureRequestUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := f.next.Delete(ctx, id)
	recordFeature(ctx, f.metrics, "feature_request_delete", start, err)
	return err
}

// commentUseCaseWithMetrics decorates CommentUseCase with metrics instrumentation.
type commentUseCaseWithMetrics struct {
	next    CommentUseCase
	metrics metrics.BusinessMetrics
}

// NewCommentUseCaseWithMetrics wraps a CommentUseCase with metrics recording.
func NewCommentUseCaseWithMetrics(useCase CommentUseCase, m metrics.BusinessMetrics) CommentUseCase {
	return &commentUseCaseWithMetrics{next: useCase, metrics: m}
}

func (c *commentUseCaseWithMetrics) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	start := time.Now()
	comment, err := c.next.Create(ctx, input)
	recordFeature(ctx, c.metrics, "comment_create", start, err)
	return comment, err
}

func (c *commentUseCaseWithMetrics) Get(ctx context.Context, id string) (*domain.Comment, error) {
	start := time.Now()
	comment, err := c.next.Get(ctx, id)
	recordFeature(ctx, c.metrics, "comment_get", start, err)
	return comment, err
}

func (c *commentUseCaseWithMetrics) List(
	ctx context.Context,
	filter domain.CommentFilter,
	offset, limit int,
) ([]*domain.Comment, error) {
	start := time.Now()
	items, err := c.next.List(ctx, filter, offset, limit)
	recordFeature(ctx, c.metrics, "comment_list", start, err)
	return items, err
}

func (c *commentUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	input UpdateCommentInput,
) (*domain.Comment, error) {
	start := time.Now()
	comment, err := c.next.Update(ctx, id, input)
	recordFeature(ctx, c.metrics, "comment_update", start, err)
	return comment, err
}

func (c *commentUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	recordFeature(ctx, c.metrics, "comment_delete", start, err)
	return err
}
