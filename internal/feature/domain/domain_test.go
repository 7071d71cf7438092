package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/piiguard/internal/errors"
)

func TestFeatureRequestPatch_IsEmpty(t *testing.T) {
	title := "t"
	assert.True(t, FeatureRequestPatch{}.IsEmpty())
	assert.False(t, FeatureRequestPatch{Title: &title}.IsEmpty())
}

func TestCommentPatch_IsEmpty(t *testing.T) {
	fr := "fr-1"
	assert.True(t, CommentPatch{}.IsEmpty())
	assert.False(t, CommentPatch{FeatureRequestID: &fr}.IsEmpty())
}

func TestErrorsWrapSentinels(t *testing.T) {
	assert.True(t, apperrors.Is(ErrFeatureRequestNotFound, apperrors.ErrNotFound))
	assert.True(t, apperrors.Is(ErrCommentAlreadyExists, apperrors.ErrConflict))
	assert.True(t, apperrors.Is(ErrUnknownReference, apperrors.ErrInvalidInput))
	assert.True(t, apperrors.Is(ErrNoFieldsToUpdate, apperrors.ErrInvalidInput))
}
