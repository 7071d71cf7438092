package domain

import "time"

// Comment is a note left by a user on a feature request.
type Comment struct {
	ID               string
	Content          string
	UserID           string
	FeatureRequestID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CommentPatch lists the columns to overwrite. Nil fields are left unchanged.
type CommentPatch struct {
	Content          *string
	UserID           *string
	FeatureRequestID *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CommentPatch) IsEmpty() bool {
	return p.Content == nil && p.UserID == nil && p.FeatureRequestID == nil
}

// CommentFilter narrows a comment listing. Empty fields match everything.
type CommentFilter struct {
	FeatureRequestID string
}
