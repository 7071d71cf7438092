package app

import (
	"database/sql"
	"fmt"

	featureHTTP "github.com/allisson/piiguard/internal/feature/http"
	featureRepository "github.com/allisson/piiguard/internal/feature/repository"
	featureUseCase "github.com/allisson/piiguard/internal/feature/usecase"
)

func (c *Container) FeatureRequestRepository() (featureUseCase.FeatureRequestRepository, error) {
	return c.featureRequestRepository.get(func() (featureUseCase.FeatureRequestRepository, error) {
		return byDriver(c, "feature request repository",
			func(db *sql.DB) featureUseCase.FeatureRequestRepository {
				return featureRepository.NewMySQLFeatureRequestRepository(db)
			},
			func(db *sql.DB) featureUseCase.FeatureRequestRepository {
				return featureRepository.NewPostgreSQLFeatureRequestRepository(db)
			},
		)
	})
}

func (c *Container) CommentRepository() (featureUseCase.CommentRepository, error) {
	return c.commentRepository.get(func() (featureUseCase.CommentRepository, error) {
		return byDriver(c, "comment repository",
			func(db *sql.DB) featureUseCase.CommentRepository { return featureRepository.NewMySQLCommentRepository(db) },
			func(db *sql.DB) featureUseCase.CommentRepository {
				return featureRepository.NewPostgreSQLCommentRepository(db)
			},
		)
	})
}

// FeatureRequestUseCase redacts PII typed into titles and bodies before storage.
func (c *Container) FeatureRequestUseCase() (featureUseCase.FeatureRequestUseCase, error) {
	return c.featureRequestUseCase.get(func() (featureUseCase.FeatureRequestUseCase, error) {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for feature request use case: %w", err)
		}
		repository, err := c.FeatureRequestRepository()
		if err != nil {
			return nil, err
		}

		base := featureUseCase.NewFeatureRequestUseCase(txManager, repository, c.Redactor(), c.Logger())
		return instrumented(c, base, featureUseCase.NewFeatureRequestUseCaseWithMetrics)
	})
}

// CommentUseCase redacts PII typed into comment bodies before storage.
func (c *Container) CommentUseCase() (featureUseCase.CommentUseCase, error) {
	return c.commentUseCase.get(func() (featureUseCase.CommentUseCase, error) {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for comment use case: %w", err)
		}
		repository, err := c.CommentRepository()
		if err != nil {
			return nil, err
		}

		base := featureUseCase.NewCommentUseCase(txManager, repository, c.Redactor(), c.Logger())
		return instrumented(c, base, featureUseCase.NewCommentUseCaseWithMetrics)
	})
}

func (c *Container) FeatureRequestHandler() (*featureHTTP.FeatureRequestHandler, error) {
	return c.featureRequestHandler.get(func() (*featureHTTP.FeatureRequestHandler, error) {
		uc, err := c.FeatureRequestUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get feature request use case for handler: %w", err)
		}
		return featureHTTP.NewFeatureRequestHandler(uc, c.Logger()), nil
	})
}

func (c *Container) CommentHandler() (*featureHTTP.CommentHandler, error) {
	return c.commentHandler.get(func() (*featureHTTP.CommentHandler, error) {
		uc, err := c.CommentUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get comment use case for handler: %w", err)
		}
		return featureHTTP.NewCommentHandler(uc, c.Logger()), nil
	})
}
