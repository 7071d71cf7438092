package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/allisson/piiguard/internal/database"
	"github.com/allisson/piiguard/internal/feature/domain"
	piiService "github.com/allisson/piiguard/internal/pii/service"
)

type commentUseCase struct {
	txManager database.TxManager
	repo      CommentRepository
	redactor  *piiService.Redactor
	logger    *slog.Logger
}

// NewCommentUseCase creates a new CommentUseCase.
func NewCommentUseCase(
	txManager database.TxManager,
	repo CommentRepository,
	redactor *piiService.Redactor,
	logger *slog.Logger,
) CommentUseCase {
	return &commentUseCase{
		txManager: txManager,
		repo:      repo,
		redactor:  redactor,
		logger:    logger,
	}
}

func (uc *commentUseCase) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if err := validateCreateCommentInput(&input); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:               input.ID,
		Content:          input.Content,
		UserID:           input.UserID,
		FeatureRequestID: input.FeatureRequestID,
	}
	if comment.ID == "" {
		comment.ID = uuid.Must(uuid.NewV7()).String()
	}

	var stored *domain.Comment
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.repo.Create(ctx, comment); err != nil {
			return err
		}
		var err error
		stored, err = uc.repo.GetByID(ctx, comment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("comment created",
		slog.String("comment_id", comment.ID),
		slog.String("feature_request_id", comment.FeatureRequestID),
		slog.String("user_fp", uc.redactor.LogFingerprint(&comment.UserID)),
	)
	return stored, nil
}

func (uc *commentUseCase) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *commentUseCase) List(
	ctx context.Context,
	filter domain.CommentFilter,
	offset, limit int,
) ([]*domain.Comment, error) {
	return uc.repo.List(ctx, filter, offset, limit)
}

func (uc *commentUseCase) Update(
	ctx context.Context,
	id string,
	input UpdateCommentInput,
) (*domain.Comment, error) {
	if err := validateUpdateCommentInput(&input); err != nil {
		return nil, err
	}

	patch := domain.CommentPatch{
		Content:          input.Content,
		UserID:           input.UserID,
		FeatureRequestID: input.FeatureRequestID,
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var stored *domain.Comment
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.repo.Update(ctx, id, patch); err != nil {
			return err
		}
		var err error
		stored, err = uc.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("comment updated", slog.String("comment_id", id))
	return stored, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("comment deleted", slog.String("comment_id", id))
	return nil
}
