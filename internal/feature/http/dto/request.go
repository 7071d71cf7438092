// Package dto provides data transfer objects for the feature request and comment HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/piiguard/internal/validation"
)

// CreateFeatureRequestRequest represents the API request for filing a feature request.
type CreateFeatureRequestRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

// Validate checks presence and shape. Length limits are enforced by the use case.
func (r *CreateFeatureRequestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, appValidation.Identifier),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.UserID, validation.Required.Error("user_id is required"), appValidation.Identifier),
	)
}

// UpdateFeatureRequestRequest represents a partial update. Absent fields are left unchanged.
type UpdateFeatureRequestRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserID  *string `json:"user_id"`
}

// Validate rejects explicitly empty values.
func (r *UpdateFeatureRequestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.UserID, validation.NilOrNotEmpty, appValidation.Identifier),
	)
}

// CreateCommentRequest represents the API request for adding a comment.
type CreateCommentRequest struct {
	ID               string `json:"id"`
	Content          string `json:"content"`
	UserID           string `json:"user_id"`
	FeatureRequestID string `json:"feature_request_id"`
}

// Validate checks presence and shape.
func (r *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, appValidation.Identifier),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.UserID, validation.Required.Error("user_id is required"), appValidation.Identifier),
		validation.Field(&r.FeatureRequestID,
			validation.Required.Error("feature_request_id is required"),
			appValidation.Identifier,
		),
	)
}

// UpdateCommentRequest represents a partial update. Absent fields are left unchanged.
type UpdateCommentRequest struct {
	Content          *string `json:"content"`
	UserID           *string `json:"user_id"`
	FeatureRequestID *string `json:"feature_request_id"`
}

// Validate rejects explicitly empty values.
func (r *UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.UserID, validation.NilOrNotEmpty, appValidation.Identifier),
		validation.Field(&r.FeatureRequestID, validation.NilOrNotEmpty, appValidation.Identifier),
	)
}
