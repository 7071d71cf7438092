// Package app wires the piiguard components together. Every component is built on
// first access, so a CLI command only opens what it actually uses: key commands never
// touch the database and the backup commands never open an HTTP listener.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	authHTTP "github.com/allisson/piiguard/internal/auth/http"
	authService "github.com/allisson/piiguard/internal/auth/service"
	authUseCase "github.com/allisson/piiguard/internal/auth/usecase"
	backupService "github.com/allisson/piiguard/internal/backup/service"
	backupUseCase "github.com/allisson/piiguard/internal/backup/usecase"
	"github.com/allisson/piiguard/internal/config"
	cryptoDomain "github.com/allisson/piiguard/internal/crypto/domain"
	cryptoService "github.com/allisson/piiguard/internal/crypto/service"
	"github.com/allisson/piiguard/internal/database"
	featureHTTP "github.com/allisson/piiguard/internal/feature/http"
	featureUseCase "github.com/allisson/piiguard/internal/feature/usecase"
	"github.com/allisson/piiguard/internal/http"
	"github.com/allisson/piiguard/internal/metrics"
	piiService "github.com/allisson/piiguard/internal/pii/service"
	piiUseCase "github.com/allisson/piiguard/internal/pii/usecase"
	userHTTP "github.com/allisson/piiguard/internal/user/http"
	userUseCase "github.com/allisson/piiguard/internal/user/usecase"
)

// Container is safe for concurrent use.
type Container struct {
	config *config.Config

	logger          lazy[*slog.Logger]
	db              lazy[*sql.DB]
	txManager       lazy[database.TxManager]
	metricsProvider lazy[*metrics.Provider]
	businessMetrics lazy[metrics.BusinessMetrics]

	kmsService  lazy[cryptoService.KMSService]
	keeper      lazy[cryptoDomain.KMSKeeper]
	keyStore    lazy[cryptoService.KeyStore]
	fieldCipher lazy[cryptoService.FieldEncrypter]
	redactor    lazy[*piiService.Redactor]
	piiUseCase  lazy[piiUseCase.UseCase]

	passwordService lazy[authService.PasswordService]
	tokenService    lazy[authService.TokenService]
	authUseCase     lazy[authUseCase.AuthUseCase]
	authHandler     lazy[*authHTTP.AuthHandler]

	userRepository lazy[userUseCase.UserRepository]
	userUseCase    lazy[userUseCase.UseCase]
	userHandler    lazy[*userHTTP.UserHandler]

	featureRequestRepository lazy[featureUseCase.FeatureRequestRepository]
	commentRepository        lazy[featureUseCase.CommentRepository]
	featureRequestUseCase    lazy[featureUseCase.FeatureRequestUseCase]
	commentUseCase           lazy[featureUseCase.CommentUseCase]
	featureRequestHandler    lazy[*featureHTTP.FeatureRequestHandler]
	commentHandler           lazy[*featureHTTP.CommentHandler]

	commandRunner lazy[*backupService.CommandRunner]
	backupUseCase lazy[backupUseCase.BackupUseCase]

	httpServer    lazy[*http.Server]
	metricsServer lazy[*http.MetricsServer]
}

// NewContainer returns an empty container. Nothing is built until first access.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the configuration the container was created with.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns a JSON logger on stdout at LOG_LEVEL. Unknown levels fall back to info.
func (c *Container) Logger() *slog.Logger {
	return c.logger.value(func() *slog.Logger {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.config.LogLevel)); err != nil {
			level = slog.LevelInfo
		}
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	})
}

// DB opens and pings the connection pool.
func (c *Container) DB() (*sql.DB, error) {
	return c.db.get(func() (*sql.DB, error) {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	})
}

// TxManager returns the transaction manager over DB.
func (c *Container) TxManager() (database.TxManager, error) {
	return c.txManager.get(func() (database.TxManager, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
		}
		return database.NewTxManager(db), nil
	})
}

// MetricsProvider returns nil, without error, when METRICS_ENABLED is false.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return c.metricsProvider.get(func() (*metrics.Provider, error) {
		if !c.config.MetricsEnabled {
			return nil, nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics provider: %w", err)
		}
		return provider, nil
	})
}

// BusinessMetrics returns a no-op recorder when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return c.businessMetrics.get(func() (metrics.BusinessMetrics, error) {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
		}
		if provider == nil {
			return metrics.NewNoOpBusinessMetrics(), nil
		}
		return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	})
}

// instrumented wraps base with the metrics decorator when metrics are enabled.
func instrumented[T any](c *Container, base T, wrap func(T, metrics.BusinessMetrics) T) (T, error) {
	if !c.config.MetricsEnabled {
		return base, nil
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get business metrics: %w", err)
	}
	return wrap(base, bm), nil
}

// HTTPServer returns the API server with every route mounted. ctx bounds the
// background work owned by the router, such as the login limiter sweep.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	return c.httpServer.get(func() (*http.Server, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for http server: %w", err)
		}
		authUC, err := c.AuthUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}

		var handlers http.Handlers
		if handlers.Auth, err = c.AuthHandler(); err != nil {
			return nil, err
		}
		if handlers.User, err = c.UserHandler(); err != nil {
			return nil, err
		}
		if handlers.FeatureRequest, err = c.FeatureRequestHandler(); err != nil {
			return nil, err
		}
		if handlers.Comment, err = c.CommentHandler(); err != nil {
			return nil, err
		}

		server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(ctx, c.config, handlers, authUC, provider)
		return server, nil
	})
}

// MetricsServer returns the Prometheus server bound to METRICS_PORT.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return c.metricsServer.get(func() (*http.MetricsServer, error) {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
	})
}

// Shutdown releases whatever was built, servers first and the database last.
// Components never accessed are skipped.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error
	collect := func(what string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", what, err))
		}
	}

	if s, ok := c.httpServer.peek(); ok {
		collect("http server shutdown", s.Shutdown(ctx))
	}
	if s, ok := c.metricsServer.peek(); ok {
		collect("metrics server shutdown", s.Shutdown(ctx))
	}
	if p, ok := c.metricsProvider.peek(); ok && p != nil {
		collect("metrics provider shutdown", p.Shutdown(ctx))
	}
	if k, ok := c.keeper.peek(); ok && k != nil {
		collect("kms keeper close", k.Close())
	}
	if db, ok := c.db.peek(); ok {
		collect("database close", db.Close())
	}

	return errors.Join(errs...)
}
