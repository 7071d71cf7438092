package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/allisson/piiguard/internal/database"
	apperrors "github.com/allisson/piiguard/internal/errors"
	"github.com/allisson/piiguard/internal/feature/domain"
)

// PostgreSQLFeatureRequestRepository handles feature request persistence for PostgreSQL.
type PostgreSQLFeatureRequestRepository struct {
	db *sql.DB
}

// NewPostgreSQLFeatureRequestRepository creates a new PostgreSQLFeatureRequestRepository.
func NewPostgreSQLFeatureRequestRepository(db *sql.DB) *PostgreSQLFeatureRequestRepository {
	return &PostgreSQLFeatureRequestRepository{db: db}
}

// Create inserts a new feature request.
func (r *PostgreSQLFeatureRequestRepository) Create(ctx context.Context, fr *domain.FeatureRequest) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO feature_requests (id, title, content, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, fr.ID, fr.Title, fr.Content, fr.UserID)
	if err != nil {
		return writeError(err, domain.ErrFeatureRequestAlreadyExists, "failed to create feature request")
	}
	return nil
}

// GetByID retrieves a feature request by ID.
func (r *PostgreSQLFeatureRequestRepository) GetByID(ctx context.Context, id string) (*domain.FeatureRequest, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, user_id, created_at, updated_at
			  FROM feature_requests WHERE id = $1`

	fr, err := scanFeatureRequest(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeatureRequestNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get feature request by id")
	}
	return fr, nil
}

// List retrieves feature requests ordered by id.
func (r *PostgreSQLFeatureRequestRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.FeatureRequest, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, user_id, created_at, updated_at
			  FROM feature_requests ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list feature requests")
	}
	return collect(rows, scanFeatureRequest, "feature requests")
}

// Update overwrites the columns set in patch.
func (r *PostgreSQLFeatureRequestRepository) Update(
	ctx context.Context,
	id string,
	patch domain.FeatureRequestPatch,
) error {
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	querier := database.GetTx(ctx, r.db)

	query, args := buildUpdate("feature_requests", id, featureRequestAssignments(patch), func(n int) string {
		return fmt.Sprintf("$%d", n)
	})
	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError(err, domain.ErrFeatureRequestAlreadyExists, "failed to update feature request")
	}
	return affectedOrNotFound(result, domain.ErrFeatureRequestNotFound)
}

// Delete removes a feature request. Its comments cascade.
func (r *PostgreSQLFeatureRequestRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete feature request")
	}
	return affectedOrNotFound(result, domain.ErrFeatureRequestNotFound)
}
