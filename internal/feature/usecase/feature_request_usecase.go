package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/piiguard/internal/database"
	"github.com/allisson/piiguard/internal/feature/domain"
	piiService "github.com/allisson/piiguard/internal/pii/service"
)

type featureRequestUseCase struct {
	txManager database.TxManager
	repo      FeatureRequestRepository
	redactor  *piiService.Redactor
	logger    *slog.Logger
}

// NewFeatureRequestUseCase creates a new FeatureRequestUseCase.
func NewFeatureRequestUseCase(
	txManager database.TxManager,
	repo FeatureRequestRepository,
	redactor *piiService.Redactor,
	logger *slog.Logger,
) FeatureRequestUseCase {
	return &featureRequestUseCase{
		txManager: txManager,
		repo:      repo,
		redactor:  redactor,
		logger:    logger,
	}
}

func (uc *featureRequestUseCase) Create(
	ctx context.Context,
	input CreateFeatureRequestInput,
) (*domain.FeatureRequest, error) {
	if err := validateCreateFeatureRequestInput(&input); err != nil {
		return nil, err
	}

	fr := &domain.FeatureRequest{
		ID:      input.ID,
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		UserID:  input.UserID,
	}
	if fr.ID == "" {
		fr.ID = uuid.Must(uuid.NewV7()).String()
	}

	var stored *domain.FeatureRequest
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.repo.Create(ctx, fr); err != nil {
			return err
		}
		var err error
		stored, err = uc.repo.GetByID(ctx, fr.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("feature request created",
		slog.String("feature_request_id", fr.ID),
		slog.String("user_fp", uc.redactor.LogFingerprint(&fr.UserID)),
	)
	return stored, nil
}

func (uc *featureRequestUseCase) Get(ctx context.Context, id string) (*domain.FeatureRequest, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *featureRequestUseCase) List(ctx context.Context, offset, limit int) ([]*domain.FeatureRequest, error) {
	return uc.repo.List(ctx, offset, limit)
}

func (uc *featureRequestUseCase) Update(
	ctx context.Context,
	id string,
	input UpdateFeatureRequestInput,
) (*domain.FeatureRequest, error) {
	if err := validateUpdateFeatureRequestInput(&input); err != nil {
		return nil, err
	}

	patch := domain.FeatureRequestPatch{
		Title:   input.Title,
		Content: input.Content,
		UserID:  input.UserID,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var stored *domain.FeatureRequest
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

	uc.logger.Info("feature request updated", slog.String("feature_request_id", id))
	return stored, nil
}

func (uc *featureRequestUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("feature request deleted", slog.String("feature_request_id", id))
	return nil
}
