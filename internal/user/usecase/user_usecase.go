package usecase

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	authService "github.com/allisson/piiguard/internal/auth/service"
	"github.com/allisson/piiguard/internal/database"
	apperrors "github.com/allisson/piiguard/internal/errors"
	piiDomain "github.com/allisson/piiguard/internal/pii/domain"
	piiUseCase "github.com/allisson/piiguard/internal/pii/usecase"
	"github.com/allisson/piiguard/internal/user/domain"
	appValidation "github.com/allisson/piiguard/internal/validation"
)

var passwordRule = appValidation.PasswordStrength{
	MinLength:      8,
	RequireUpper:   true,
	RequireLower:   true,
	RequireNumber:  true,
	RequireSpecial: true,
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager   database.TxManager
	userRepo    UserRepository
	pii         piiUseCase.UseCase
	passwordSvc authService.PasswordService
	logger      *slog.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	pii piiUseCase.UseCase,
	passwordSvc authService.PasswordService,
	logger *slog.Logger,
) UseCase {
	return &UserUseCase{
		txManager:   txManager,
		userRepo:    userRepo,
		pii:         pii,
		passwordSvc: passwordSvc,
		logger:      logger,
	}
}

func validateCreateUserInput(input *CreateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.ID, appValidation.Identifier),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.FullName,
			validation.Required.Error("full_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("full_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			passwordRule,
		),
		validation.Field(&input.Role, appValidation.Role),
	)
	return appValidation.WrapValidationError(err)
}

func validateUpdateUserInput(input *UpdateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Email,
			validation.NilOrNotEmpty,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.FullName,
			validation.NilOrNotEmpty,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("full_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.NilOrNotEmpty,
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			passwordRule,
		),
		validation.Field(&input.Role, validation.NilOrNotEmpty, appValidation.Role),
	)
	return appValidation.WrapValidationError(err)
}

// Create validates the input, encrypts the personal fields, hashes the password and
// stores the user.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.UserView, error) {
	if err := validateCreateUserInput(&input); err != nil {
		return nil, err
	}

	role := authDomain.RoleUser
	if input.Role != "" {
		parsed, err := authDomain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	id := input.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	encEmail, err := uc.pii.ProtectField(ctx, &email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to protect email")
	}
	encName, err := uc.pii.ProtectField(ctx, &fullName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to protect full name")
	}

	passwordHash, err := uc.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:           id,
		Email:        encEmail,
		FullName:     encName,
		PasswordHash: passwordHash,
		Role:         role,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
		// Read back so the view carries database timestamps.
		stored, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user created",
		slog.String("user_id", id),
		slog.String("email_fp", uc.pii.RedactForOutput(&email, piiDomain.KindFingerprint)),
		slog.String("role", role.String()),
	)

	return uc.view(ctx, user), nil
}

// Get returns the masked view of a single user.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*domain.UserView, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, user), nil
}

// List returns masked views ordered by id. One unreadable row does not fail the listing.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.UserView, error) {
	users, err := uc.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, uc.view(ctx, user))
	}
	return views, nil
}

// Update applies a partial update. Email and full name are re-encrypted and a new
// password is re-hashed before anything is stored.
func (uc *UserUseCase) Update(ctx context.Context, id string, input UpdateUserInput) error {
	if err := validateUpdateUserInput(&input); err != nil {
		return err
	}

	var patch domain.UserPatch

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		enc, err := uc.pii.ProtectField(ctx, &email)
		if err != nil {
			return apperrors.Wrap(err, "failed to protect email")
		}
		patch.Email = enc
	}

	if input.FullName != nil {
		fullName := strings.TrimSpace(*input.FullName)
		enc, err := uc.pii.ProtectField(ctx, &fullName)
		if err != nil {
			return apperrors.Wrap(err, "failed to protect full name")
		}
		patch.FullName = enc
	}

	if input.Password != nil {
		hash, err := uc.passwordSvc.Hash(*input.Password)
		if err != nil {
			return apperrors.Wrap(err, "failed to hash password")
		}
		patch.PasswordHash = &hash
	}

	if input.Role != nil {
		role, err := authDomain.ParseRole(*input.Role)
		if err != nil {
			return err
		}
		patch.Role = &role
	}

	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}

	if err := uc.userRepo.Update(ctx, id, patch); err != nil {
		return err
	}

	uc.logger.Info("user updated", slog.String("user_id", id))
	return nil
}

// Delete removes a user. Feature requests and comments owned by the user cascade.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("user deleted", slog.String("user_id", id))
	return nil
}

func (uc *UserUseCase) view(ctx context.Context, user *domain.User) *domain.UserView {
	return &domain.UserView{
		ID:        user.ID,
		Email:     uc.pii.RevealAndRedact(ctx, user.Email, piiDomain.KindEmail),
		FullName:  uc.pii.RevealAndRedact(ctx, user.FullName, piiDomain.KindName),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
