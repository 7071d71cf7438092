// Package httputil turns domain errors into JSON error bodies and parses list queries.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type errorMapping struct {
	target  error
	status  int
	kind    string
	code    string
	message string
	// echo returns err.Error() as the message instead of the fixed text.
	echo bool
}

// errorMappings is checked in order. ErrTokenExpired precedes ErrUnauthorized because it wraps it.
// Authentication failures share one message so callers cannot tell a wrong user from a wrong password.
var errorMappings = []errorMapping{
	{target: apperrors.ErrNotFound, status: http.StatusNotFound, kind: "not_found",
		message: "The requested resource was not found"},
	{target: apperrors.ErrConflict, status: http.StatusConflict, kind: "conflict",
		message: "A conflict occurred with existing data"},
	{target: apperrors.ErrInvalidInput, status: http.StatusUnprocessableEntity, kind: "invalid_input", echo: true},
	{target: authDomain.ErrTokenExpired, status: http.StatusUnauthorized, kind: "unauthorized",
		code: "token_expired", message: "Token has expired"},
	{target: apperrors.ErrUnauthorized, status: http.StatusUnauthorized, kind: "unauthorized",
		message: "Authentication is required"},
	{target: apperrors.ErrForbidden, status: http.StatusForbidden, kind: "forbidden",
		message: "You don't have permission to access this resource"},
}

// HandleErrorGin maps err onto a status and writes the JSON body. Unknown errors
// become a 500 whose body never includes err's text.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	body := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

	for _, m := range errorMappings {
		if !apperrors.Is(err, m.target) {
			continue
		}
		status = m.status
		body = ErrorResponse{Error: m.kind, Code: m.code, Message: m.message}
		if m.echo {
			body.Message = err.Error()
		}
		break
	}

	body.RequestID = requestid.Get(c)

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.String("request_id", body.RequestID),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleBadRequestGin writes a 400 for bodies or parameters that could not be parsed.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusBadRequest, "bad_request", err, logger)
}

// HandleValidationErrorGin writes a 422 for requests that parsed but failed validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusUnprocessableEntity, "validation_error", err, logger)
}

func writeClientError(c *gin.Context, status int, code string, err error, logger *slog.Logger) {
	body := ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		RequestID: requestid.Get(c),
	}

	if logger != nil {
		logger.Warn("rejected request",
			slog.String("error_code", code),
			slog.String("request_id", body.RequestID),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}
