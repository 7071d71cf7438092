// Package domain defines feature requests and the comments attached to them.
package domain

import (
	"time"

	"github.com/allisson/piiguard/internal/errors"
)

// FeatureRequest is a product request filed on behalf of a user.
type FeatureRequest struct {
	ID        string
	Title     string
	Content   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeatureRequestPatch lists the columns to overwrite. Nil fields are left unchanged.
type FeatureRequestPatch struct {
	Title   *string
	Content *string
	UserID  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FeatureRequestPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.UserID == nil
}

// Domain-specific errors for feature requests and comments.
var (
	// ErrFeatureRequestNotFound indicates the requested feature request does not exist.
	ErrFeatureRequestNotFound = errors.Wrap(errors.ErrNotFound, "feature request not found")

	// ErrFeatureRequestAlreadyExists indicates a feature request with the same id exists.
	ErrFeatureRequestAlreadyExists = errors.Wrap(errors.ErrConflict, "feature request already exists")

	// ErrCommentNotFound indicates the requested comment does not exist.
	ErrCommentNotFound = errors.Wrap(errors.ErrNotFound, "comment not found")

	// ErrCommentAlreadyExists indicates a comment with the same id exists.
	ErrCommentAlreadyExists = errors.Wrap(errors.ErrConflict, "comment already exists")

	// ErrUnknownReference indicates a user_id or feature_request_id that does not exist.
	ErrUnknownReference = errors.Wrap(errors.ErrInvalidInput, "referenced user or feature request does not exist")

	// ErrNoFieldsToUpdate indicates an update request without any updatable field.
	ErrNoFieldsToUpdate = errors.Wrap(errors.ErrInvalidInput, "no valid fields to update")
)
