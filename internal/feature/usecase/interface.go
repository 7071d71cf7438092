// Package usecase implements feature request and comment business logic.
package usecase

import (
	"context"

	"github.com/allisson/piiguard/internal/feature/domain"
)

// CreateFeatureRequestInput contains the data for a new feature request.
type CreateFeatureRequestInput struct {
	// ID is optional; an empty value gets a generated UUIDv7.
	ID      string
	Title   string
	Content string
	UserID  string
}

// UpdateFeatureRequestInput lists the fields to change. Nil fields are left untouched.
type UpdateFeatureRequestInput struct {
	Title   *string
	Content *string
	UserID  *string
}

// CreateCommentInput contains the data for a new comment.
type CreateCommentInput struct {
	// ID is optional; an empty value gets a generated UUIDv7.
	ID               string
	Content          string
	UserID           string
	FeatureRequestID string
}

// UpdateCommentInput lists the fields to change. Nil fields are left untouched.
type UpdateCommentInput struct {
	Content          *string
	UserID           *string
	FeatureRequestID *string
}

// FeatureRequestRepository defines persistence operations for feature requests.
// Implementations must support transaction-aware operations via context propagation.
type FeatureRequestRepository interface {
	Create(ctx context.Context, fr *domain.FeatureRequest) error
	GetByID(ctx context.Context, id string) (*domain.FeatureRequest, error)
	List(ctx context.Context, offset, limit int) ([]*domain.FeatureRequest, error)
	Update(ctx context.Context, id string, patch domain.FeatureRequestPatch) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for comments.
// Implementations must support transaction-aware operations via context propagation.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context, filter domain.CommentFilter, offset, limit int) ([]*domain.Comment, error)
	Update(ctx context.Context, id string, patch domain.CommentPatch) error
	Delete(ctx context.Context, id string) error
}

// FeatureRequestUseCase defines business logic for feature requests.
type FeatureRequestUseCase interface {
	// Create stores a feature request owned by an existing user.
	// Returns ErrUnknownReference for an unknown user_id.
	Create(ctx context.Context, input CreateFeatureRequestInput) (*domain.FeatureRequest, error)
	Get(ctx context.Context, id string) (*domain.FeatureRequest, error)
	List(ctx context.Context, offset, limit int) ([]*domain.FeatureRequest, error)
	// Update applies a partial update and returns the stored result.
	Update(ctx context.Context, id string, input UpdateFeatureRequestInput) (*domain.FeatureRequest, error)
	// Delete removes the feature request and its comments.
	Delete(ctx context.Context, id string) error
}

// CommentUseCase defines business logic for comments.
type CommentUseCase interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context, filter domain.CommentFilter, offset, limit int) ([]*domain.Comment, error)
	Update(ctx context.Context, id string, input UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
