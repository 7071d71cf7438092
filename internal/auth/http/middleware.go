// Package http holds the login endpoint and the gin middleware that turns a bearer
// token into a Principal and enforces roles on each route.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	authUseCase "github.com/allisson/piiguard/internal/auth/usecase"
	apperrors "github.com/allisson/piiguard/internal/errors"
	"github.com/allisson/piiguard/internal/httputil"
)

const bearerScheme = "bearer"

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, err error, logger *slog.Logger) {
	httputil.HandleErrorGin(c, err, logger)
	c.Abort()
}

// AuthenticationMiddleware verifies the bearer token and stores the resulting
// Principal in the request context. Every failure answers 401; an expired token
// carries the "token_expired" code so clients know to log in again.
func AuthenticationMiddleware(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed bearer token",
				slog.String("path", c.FullPath()))
			abort(c, apperrors.ErrUnauthorized, logger)
			return
		}

		principal, err := authUseCase.Authorize(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.Any("error", err))
			abort(c, err, logger)
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// AuthorizationMiddleware lets the request through only when the authenticated
// principal holds one of roles. It must run after AuthenticationMiddleware:
//
//	protected.DELETE("/users/:id", AuthorizationMiddleware(logger, authDomain.WriteRoles...), h.DeleteHandler)
func AuthorizationMiddleware(logger *slog.Logger, roles ...authDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			abort(c, apperrors.ErrUnauthorized, logger)
			return
		}

		if !principal.Role.In(roles...) {
			logger.Debug("authorization failed: role not allowed",
				slog.String("subject", principal.Subject),
				slog.String("role", principal.Role.String()),
				slog.String("path", c.FullPath()))
			abort(c, authDomain.ErrRoleNotAllowed, logger)
			return
		}

		c.Next()
	}
}
