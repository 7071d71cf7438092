package dto

import (
	"github.com/allisson/piiguard/internal/feature/domain"
	"github.com/allisson/piiguard/internal/feature/usecase"
)

// ToCreateFeatureRequestInput converts a request DTO to use case input.
func ToCreateFeatureRequestInput(req CreateFeatureRequestRequest) usecase.CreateFeatureRequestInput {
	return usecase.CreateFeatureRequestInput{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
}

// ToUpdateFeatureRequestInput converts a request DTO to use case input.
func ToUpdateFeatureRequestInput(req UpdateFeatureRequestRequest) usecase.UpdateFeatureRequestInput {
	return usecase.UpdateFeatureRequestInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
}

// ToFeatureRequestResponse converts a domain feature request to its API shape.
func ToFeatureRequestResponse(fr *domain.FeatureRequest) FeatureRequestResponse {
	return FeatureRequestResponse{
		ID:        fr.ID,
		Title:     fr.Title,
		Content:   fr.Content,
		UserID:    fr.UserID,
		CreatedAt: fr.CreatedAt,
		UpdatedAt: fr.UpdatedAt,
	}
}

// ToListFeatureRequestsResponse converts a slice of feature requests.
func ToListFeatureRequestsResponse(items []*domain.FeatureRequest) ListFeatureRequestsResponse {
	data := make([]FeatureRequestResponse, 0, len(items))
	for _, fr := range items {
		data = append(data, ToFeatureRequestResponse(fr))
	}
	return ListFeatureRequestsResponse{Data: data}
}

// ToCreateCommentInput converts a request DTO to use case input.
func ToCreateCommentInput(req CreateCommentRequest) usecase.CreateCommentInput {
	return usecase.CreateCommentInput{
		ID:               req.ID,
		Content:          req.Content,
		UserID:           req.UserID,
		FeatureRequestID: req.FeatureRequestID,
	}
}

// ToUpdateCommentInput converts a request DTO to use case input.
func ToUpdateCommentInput(req UpdateCommentRequest) usecase.UpdateCommentInput {
	return usecase.UpdateCommentInput{
		Content:          req.Content,
		UserID:           req.UserID,
		FeatureRequestID: req.FeatureRequestID,
	}
}

// ToCommentResponse converts a domain comment to its API shape.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:               c.ID,
		Content:          c.Content,
		UserID:           c.UserID,
		FeatureRequestID: c.FeatureRequestID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToListCommentsResponse converts a slice of comments.
func ToListCommentsResponse(items []*domain.Comment) ListCommentsResponse {
	data := make([]CommentResponse, 0, len(items))
	for _, c := range items {
		data = append(data, ToCommentResponse(c))
	}
	return ListCommentsResponse{Data: data}
}
