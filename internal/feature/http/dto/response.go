package dto

import "time"

// FeatureRequestResponse represents a feature request in API responses.
type FeatureRequestResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFeatureRequestsResponse represents a page of feature requests.
type ListFeatureRequestsResponse struct {
	Data []FeatureRequestResponse `json:"data"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID               string    `json:"id"`
	Content          string    `json:"content"`
	UserID           string    `json:"user_id"`
	FeatureRequestID string    `json:"feature_request_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListCommentsResponse represents a page of comments.
type ListCommentsResponse struct {
	Data []CommentResponse `json:"data"`
}
