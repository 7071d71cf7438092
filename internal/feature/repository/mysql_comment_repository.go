package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/piiguard/internal/database"
	apperrors "github.com/allisson/piiguard/internal/errors"
	"github.com/allisson/piiguard/internal/feature/domain"
)

// MySQLCommentRepository handles comment persistence for MySQL.
type MySQLCommentRepository struct {
	db *sql.DB
}

// NewMySQLCommentRepository creates a new MySQLCommentRepository.
func NewMySQLCommentRepository(db *sql.DB) *MySQLCommentRepository {
	return &MySQLCommentRepository{db: db}
}

// Create inserts a new comment.
func (r *MySQLCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO comments (id, content, user_id, feature_request_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx, query, comment.ID, comment.Content, comment.UserID, comment.FeatureRequestID,
	)
	if err != nil {
		return writeError(err, domain.ErrCommentAlreadyExists, "failed to create comment")
	}
	return nil
}

// GetByID retrieves a comment by ID.
func (r *MySQLCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, content, user_id, feature_request_id, created_at, updated_at
			  FROM comments WHERE id = ?`

	comment, err := scanComment(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get comment by id")
	}
	return comment, nil
}

// List retrieves comments ordered by id, optionally limited to one feature request.
func (r *MySQLCommentRepository) List(
	ctx context.Context,
	filter domain.CommentFilter,
	offset, limit int,
) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	var rows *sql.Rows
	var err error
	if filter.FeatureRequestID != "" {
		query := `SELECT id, content, user_id, feature_request_id, created_at, updated_at
				  FROM comments WHERE feature_request_id = ? ORDER BY id LIMIT ? OFFSET ?`
		rows, err = querier.QueryContext(ctx, query, filter.FeatureRequestID, limit, offset)
	} else {
		query := `SELECT id, content, user_id, feature_request_id, created_at, updated_at
				  FROM comments ORDER BY id LIMIT ? OFFSET ?`
		rows, err = querier.QueryContext(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	return collect(rows, scanComment, "comments")
}

// Update overwrites the columns set in patch.
func (r *MySQLCommentRepository) Update(ctx context.Context, id string, patch domain.CommentPatch) error {
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	querier := database.GetTx(ctx, r.db)

	query, args := buildUpdate("comments", id, commentAssignments(patch), func(int) string {
		return "?"
	})
	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError(err, domain.ErrCommentAlreadyExists, "failed to update comment")
	}
	return mysqlEnsureExists(ctx, querier, result, "comments", id, domain.ErrCommentNotFound)
}

// Delete removes a comment.
func (r *MySQLCommentRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete comment")
	}
	return affectedOrNotFound(result, domain.ErrCommentNotFound)
}
