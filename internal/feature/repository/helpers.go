// Package repository provides data persistence implementations for feature requests
// and comments.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/piiguard/internal/database"
	apperrors "github.com/allisson/piiguard/internal/errors"
	"github.com/allisson/piiguard/internal/feature/domain"
)

// assignment is one "column = value" pair of an UPDATE. Nil values are skipped.
type assignment struct {
	column string
	value  *string
}

// buildUpdate renders an UPDATE for table. bind returns the placeholder for the
// n-th argument (1-based). The returned args end with id.
func buildUpdate(table, id string, assignments []assignment, bind func(n int) string) (string, []any) {
	var sets []string
	var args []any

	for _, a := range assignments {
		if a.value == nil {
			continue
		}
		args = append(args, *a.value)
		sets = append(sets, a.column+" = "+bind(len(args)))
	}

	args = append(args, id)
	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") +
		", updated_at = NOW() WHERE id = " + bind(len(args))
	return query, args
}

// writeError maps driver constraint errors to domain errors.
func writeError(err, alreadyExists error, message string) error {
	switch {
	case database.IsUniqueViolation(err):
		return alreadyExists
	case database.IsForeignKeyViolation(err):
		return domain.ErrUnknownReference
	default:
		return apperrors.Wrap(err, message)
	}
}

// affectedOrNotFound returns notFound when result touched no rows.
func affectedOrNotFound(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// mysqlEnsureExists resolves a zero RowsAffected from MySQL, which also reports
// zero when the new values equal the stored ones.
func mysqlEnsureExists(
	ctx context.Context,
	querier database.Querier,
	result sql.Result,
	table, id string,
	notFound error,
) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected > 0 {
		return nil
	}

	var exists int
	err = querier.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound
		}
		return apperrors.Wrap(err, "failed to check "+table)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeatureRequest(row rowScanner) (*domain.FeatureRequest, error) {
	var fr domain.FeatureRequest
	if err := row.Scan(&fr.ID, &fr.Title, &fr.Content, &fr.UserID, &fr.CreatedAt, &fr.UpdatedAt); err != nil {
		return nil, err
	}
	return &fr, nil
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.Content, &c.UserID, &c.FeatureRequestID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// collect scans every row with scan and closes rows.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (*T, error), what string) ([]*T, error) {
	defer func() {
		_ = rows.Close()
	}()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan "+what)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate "+what)
	}
	return items, nil
}

func featureRequestAssignments(patch domain.FeatureRequestPatch) []assignment {
	return []assignment{
		{column: "title", value: patch.Title},
		{column: "content", value: patch.Content},
		{column: "user_id", value: patch.UserID},
	}
}

func commentAssignments(patch domain.CommentPatch) []assignment {
	return []assignment{
		{column: "content", value: patch.Content},
		{column: "user_id", value: patch.UserID},
		{column: "feature_request_id", value: patch.FeatureRequestID},
	}
}
