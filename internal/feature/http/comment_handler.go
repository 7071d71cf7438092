package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/piiguard/internal/feature/domain"
	"github.com/allisson/piiguard/internal/feature/http/dto"
	"github.com/allisson/piiguard/internal/feature/usecase"
	"github.com/allisson/piiguard/internal/httputil"
	customValidation "github.com/allisson/piiguard/internal/validation"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	useCase usecase.CommentUseCase
	logger  *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(useCase usecase.CommentUseCase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// ListHandler returns a page of comments, optionally for one feature request.
// GET /v1/comments?feature_request_id=...&offset=0&limit=50
func (h *CommentHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter := domain.CommentFilter{FeatureRequestID: c.Query("feature_request_id")}
	items, err := h.useCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommentsResponse(items))
}

// GetHandler returns a single comment.
// GET /v1/comments/:id
func (h *CommentHandler) GetHandler(c *gin.Context) {
	comment, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// CreateHandler adds a comment.
// POST /v1/comments - Returns 201 Created.
func (h *CommentHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	comment, err := h.useCase.Create(c.Request.Context(), dto.ToCreateCommentInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// UpdateHandler applies a partial update.
// PUT /v1/comments/:id
func (h *CommentHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	comment, err := h.useCase.Update(c.Request.Context(), c.Param("id"), dto.ToUpdateCommentInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteHandler removes a comment.
// DELETE /v1/comments/:id - Returns 204 No Content.
func (h *CommentHandler) DeleteHandler(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
