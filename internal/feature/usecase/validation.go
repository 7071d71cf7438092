package usecase

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/piiguard/internal/validation"
)

const maxContentLength = 10000

func validateCreateFeatureRequestInput(input *CreateFeatureRequestInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.ID, appValidation.Identifier),
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
		validation.Field(&input.UserID,
			validation.Required.Error("user_id is required"),
			appValidation.Identifier,
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateUpdateFeatureRequestInput(input *UpdateFeatureRequestInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Title,
			validation.NilOrNotEmpty,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Content,
			validation.NilOrNotEmpty,
			appValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
		validation.Field(&input.UserID, validation.NilOrNotEmpty, appValidation.Identifier),
	)
	return appValidation.WrapValidationError(err)
}

func validateCreateCommentInput(input *CreateCommentInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.ID, appValidation.Identifier),
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
		validation.Field(&input.UserID,
			validation.Required.Error("user_id is required"),
			appValidation.Identifier,
		),
		validation.Field(&input.FeatureRequestID,
			validation.Required.Error("feature_request_id is required"),
			appValidation.Identifier,
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateUpdateCommentInput(input *UpdateCommentInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Content,
			validation.NilOrNotEmpty,
			appValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
		validation.Field(&input.UserID, validation.NilOrNotEmpty, appValidation.Identifier),
		validation.Field(&input.FeatureRequestID, validation.NilOrNotEmpty, appValidation.Identifier),
	)
	return appValidation.WrapValidationError(err)
}
