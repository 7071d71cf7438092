// Package http provides HTTP handlers for feature requests and comments.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/piiguard/internal/feature/http/dto"
	"github.com/allisson/piiguard/internal/feature/usecase"
	"github.com/allisson/piiguard/internal/httputil"
	customValidation "github.com/allisson/piiguard/internal/validation"
)

// FeatureRequestHandler handles feature request HTTP requests.
type FeatureRequestHandler struct {
	useCase usecase.FeatureRequestUseCase
	logger  *slog.Logger
}

// NewFeatureRequestHandler creates a new FeatureRequestHandler.
func NewFeatureRequestHandler(useCase usecase.FeatureRequestUseCase, logger *slog.Logger) *FeatureRequestHandler {
	return &FeatureRequestHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// ListHandler returns a page of feature requests.
// GET /v1/feature-requests?offset=0&limit=50
func (h *FeatureRequestHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	items, err := h.useCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListFeatureRequestsResponse(items))
}

// GetHandler returns a single feature request.
// GET /v1/feature-requests/:id
func (h *FeatureRequestHandler) GetHandler(c *gin.Context) {
	fr, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureRequestResponse(fr))
}

// CreateHandler files a feature request.
// POST /v1/feature-requests - Returns 201 Created.
func (h *FeatureRequestHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateFeatureRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	fr, err := h.useCase.Create(c.Request.Context(), dto.ToCreateFeatureRequestInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeatureRequestResponse(fr))
}

// UpdateHandler applies a partial update.
// PUT /v1/feature-requests/:id
func (h *FeatureRequestHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateFeatureRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	fr, err := h.useCase.Update(c.Request.Context(), c.Param("id"), dto.ToUpdateFeatureRequestInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureRequestResponse(fr))
}

// DeleteHandler removes a feature request and its comments.
// DELETE /v1/feature-requests/:id - Returns 204 No Content.
func (h *FeatureRequestHandler) DeleteHandler(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
