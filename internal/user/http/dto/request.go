// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/piiguard/internal/validation"
)

// CreateUserRequest represents the API request for creating a user.
type CreateUserRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request field, never echoed
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Validate checks presence and shape. Password strength is enforced by the use case.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, appValidation.Identifier),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
		validation.Field(&r.FullName,
			validation.Required.Error("full_name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Role, appValidation.Role),
	)
}

// UpdateUserRequest represents a partial update. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"` //nolint:gosec // request field, never echoed
	Role     *string `json:"role"`
}

// Validate rejects explicitly empty values and unknown roles.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.NilOrNotEmpty, appValidation.Email),
		validation.Field(&r.FullName, validation.NilOrNotEmpty, appValidation.NotBlank),
		validation.Field(&r.Password, validation.NilOrNotEmpty),
		validation.Field(&r.Role, validation.NilOrNotEmpty, appValidation.Role),
	)
}
