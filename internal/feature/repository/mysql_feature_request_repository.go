package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/piiguard/internal/database"
	apperrors "github.com/allisson/piiguard/internal/errors"
	"github.com/allisson/piiguard/internal/feature/domain"
)

// MySQLFeatureRequestRepository handles feature request persistence for MySQL.
type MySQLFeatureRequestRepository struct {
	db *sql.DB
}

// NewMySQLFeatureRequestRepository creates a new MySQLFeatureRequestRepository.
func NewMySQLFeatureRequestRepository(db *sql.DB) *MySQLFeatureRequestRepository {
	return &MySQLFeatureRequestRepository{db: db}
}

// Create inserts a new feature request.
func (r *MySQLFeatureRequestRepository) Create(ctx context.Context, fr *domain.FeatureRequest) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO feature_requests (id, title, content, user_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, fr.ID, fr.Title, fr.Content, fr.UserID)
	if err != nil {
		return writeError(err, domain.ErrFeatureRequestAlreadyExists, "failed to create feature request")
	}
	return nil
}

// GetByID retrieves a feature request by ID.
func (r *MySQLFeatureRequestRepository) GetByID(ctx context.Context, id string) (*domain.FeatureRequest, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, user_id, created_at, updated_at
			  FROM feature_requests WHERE id = ?`

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
func (r *MySQLFeatureRequestRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.FeatureRequest, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, user_id, created_at, updated_at
			  FROM feature_requests ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list feature requests")
	}
	return collect(rows, scanFeatureRequest, "feature requests")
}

// Update overwrites the columns set in patch.
func (r *MySQLFeatureRequestRepository) Update(
	ctx context.Context,
	id string,
	patch domain.FeatureRequestPatch,
) error {
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	querier := database.GetTx(ctx, r.db)

	query, args := buildUpdate("feature_requests", id, featureRequestAssignments(patch), func(int) string {
		return "?"
	})
	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError(err, domain.ErrFeatureRequestAlreadyExists, "failed to update feature request")
	}
	return mysqlEnsureExists(ctx, querier, result, "feature_requests", id, domain.ErrFeatureRequestNotFound)
}

// Delete removes a feature request. Its comments cascade.
func (r *MySQLFeatureRequestRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete feature request")
	}
	return affectedOrNotFound(result, domain.ErrFeatureRequestNotFound)
}
