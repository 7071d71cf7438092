package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/piiguard/internal/auth/http/dto"
	authUseCase "github.com/allisson/piiguard/internal/auth/usecase"
	"github.com/allisson/piiguard/internal/httputil"
	userDto "github.com/allisson/piiguard/internal/user/http/dto"
	userUseCase "github.com/allisson/piiguard/internal/user/usecase"
	customValidation "github.com/allisson/piiguard/internal/validation"
)

// AuthHandler exchanges user credentials for session tokens.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	userUseCase userUseCase.UseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// LoginHandler authenticates the caller and returns a token plus the masked profile.
// POST /v1/auth/login - Returns 200 OK, or 401 for any credential mismatch.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Authenticate(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	view, err := h.userUseCase.Get(c.Request.Context(), output.Principal.Subject)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(output, userDto.ToUserResponse(view)))
}
