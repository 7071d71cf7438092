package app

import (
	"database/sql"
	"fmt"

	"github.com/allisson/piiguard/internal/database"
	userHTTP "github.com/allisson/piiguard/internal/user/http"
	userRepository "github.com/allisson/piiguard/internal/user/repository"
	userUseCase "github.com/allisson/piiguard/internal/user/usecase"
)

// byDriver opens the database and picks the constructor for DB_DRIVER.
func byDriver[T any](c *Container, what string, mysql, postgres func(*sql.DB) T) (T, error) {
	var zero T

	db, err := c.DB()
	if err != nil {
		return zero, fmt.Errorf("failed to get database for %s: %w", what, err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return mysql(db), nil
	case database.DriverPostgres:
		return postgres(db), nil
	default:
		return zero, fmt.Errorf("unsupported database driver for %s: %s", what, c.config.DBDriver)
	}
}

func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	return c.userRepository.get(func() (userUseCase.UserRepository, error) {
		return byDriver(c, "user repository",
			func(db *sql.DB) userUseCase.UserRepository { return userRepository.NewMySQLUserRepository(db) },
			func(db *sql.DB) userUseCase.UserRepository { return userRepository.NewPostgreSQLUserRepository(db) },
		)
	})
}

// UserUseCase encrypts email and full name on the way in and masks them on the way out.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	return c.userUseCase.get(func() (userUseCase.UseCase, error) {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
		}
		repository, err := c.UserRepository()
		if err != nil {
			return nil, err
		}
		pii, err := c.PIIUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get pii use case for user use case: %w", err)
		}

		base := userUseCase.NewUserUseCase(txManager, repository, pii, c.PasswordService(), c.Logger())
		return instrumented(c, base, userUseCase.NewUserUseCaseWithMetrics)
	})
}

func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	return c.userHandler.get(func() (*userHTTP.UserHandler, error) {
		uc, err := c.UserUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
		}
		return userHTTP.NewUserHandler(uc, c.Logger()), nil
	})
}
