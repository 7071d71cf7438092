// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	authHTTP "github.com/allisson/piiguard/internal/auth/http"
	authUseCase "github.com/allisson/piiguard/internal/auth/usecase"
	"github.com/allisson/piiguard/internal/config"
	featureHTTP "github.com/allisson/piiguard/internal/feature/http"
	"github.com/allisson/piiguard/internal/metrics"
	userHTTP "github.com/allisson/piiguard/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Handlers groups the route handlers mounted by SetupRouter.
type Handlers struct {
	Auth           *authHTTP.AuthHandler
	User           *userHTTP.UserHandler
	FeatureRequest *featureHTTP.FeatureRequestHandler
	Comment        *featureHTTP.CommentHandler
}

// NewServer creates a new HTTP server. The router is attached by SetupRouter.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		server: newHTTPServer(host, port, nil),
		logger: logger,
	}
}

// SetupRouter builds the gin engine with middleware and every API route.
//
// Reads of users, feature requests and comments accept the admin and user roles.
// Writes accept admin only. The login endpoint is the only unauthenticated write
// and is rate limited per client IP when enabled. ctx bounds the lifetime of the
// rate limiter cleanup goroutine.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	authUseCase authUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	authenticate := authHTTP.AuthenticationMiddleware(authUseCase, s.logger)
	canRead := authHTTP.AuthorizationMiddleware(s.logger, authDomain.ReadRoles...)
	canWrite := authHTTP.AuthorizationMiddleware(s.logger, authDomain.WriteRoles...)

	v1 := router.Group("/v1")

	// Login
	loginHandlers := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
			ctx,
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	loginHandlers = append(loginHandlers, handlers.Auth.LoginHandler)
	v1.POST("/auth/login", loginHandlers...)

	// Everything below requires a valid session token
	protected := v1.Group("", authenticate)

	users := protected.Group("/users")
	{
		users.GET("", canRead, handlers.User.ListHandler)
		users.GET("/:id", canRead, handlers.User.GetHandler)
		users.POST("", canWrite, handlers.User.CreateHandler)
		users.PUT("/:id", canWrite, handlers.User.UpdateHandler)
		users.DELETE("/:id", canWrite, handlers.User.DeleteHandler)
	}

	featureRequests := protected.Group("/feature-requests")
	{
		featureRequests.GET("", canRead, handlers.FeatureRequest.ListHandler)
		featureRequests.GET("/:id", canRead, handlers.FeatureRequest.GetHandler)
		featureRequests.POST("", canWrite, handlers.FeatureRequest.CreateHandler)
		featureRequests.PUT("/:id", canWrite, handlers.FeatureRequest.UpdateHandler)
		featureRequests.DELETE("/:id", canWrite, handlers.FeatureRequest.DeleteHandler)
	}

	comments := protected.Group("/comments")
	{
		comments.GET("", canRead, handlers.Comment.ListHandler)
		comments.GET("/:id", canRead, handlers.Comment.GetHandler)
		comments.POST("", canWrite, handlers.Comment.CreateHandler)
		comments.PUT("/:id", canWrite, handlers.Comment.UpdateHandler)
		comments.DELETE("/:id", canWrite, handlers.Comment.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves the router configured by SetupRouter and blocks until the server stops.
func (s *Server) Start(_ context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router
	return listenAndServe(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return shutdownServer(ctx, s.server, s.logger, "http server")
}

// healthHandler answers liveness probes.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler answers readiness probes with a database ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
