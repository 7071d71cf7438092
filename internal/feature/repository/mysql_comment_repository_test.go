package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/piiguard/internal/feature/domain"
)

func TestMySQLCommentRepository_Create(t *testing.T) {
	ctx := context.Background()
	comment := &domain.Comment{ID: "c-1", Content: "+1", UserID: "u-1", FeatureRequestID: "fr-1"}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO comments").
			WithArgs("c-1", "+1", "u-1", "fr-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMySQLCommentRepository(db).Create(ctx, comment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownFeatureRequest", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO comments").WillReturnError(&mysql.MySQLError{Number: 1452})

		err := NewMySQLCommentRepository(db).Create(ctx, comment)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})
}

func TestMySQLCommentRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("All", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM comments ORDER BY id LIMIT (.+) OFFSET").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow("c-1", "+1", "u-1", "fr-1", now, now))

		items, err := NewMySQLCommentRepository(db).List(ctx, domain.CommentFilter{}, 0, 10)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("ByFeatureRequest", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM comments WHERE feature_request_id = (.+) ORDER BY id").
			WithArgs("fr-9", 10, 20).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		items, err := NewMySQLCommentRepository(db).List(ctx, domain.CommentFilter{FeatureRequestID: "fr-9"}, 20, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})
}

func TestMySQLCommentRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM comments WHERE id = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := NewMySQLCommentRepository(db).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestMySQLCommentRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE comments SET content = (.+), user_id = (.+), updated_at").
			WithArgs("edited", "u-2", "c-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewMySQLCommentRepository(db).Update(ctx, "c-1",
			domain.CommentPatch{Content: ptr("edited"), UserID: ptr("u-2")})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE comments").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM comments").WillReturnRows(sqlmock.NewRows([]string{"1"}))

		err := NewMySQLCommentRepository(db).Update(ctx, "missing", domain.CommentPatch{Content: ptr("x")})
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestMySQLCommentRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM comments WHERE id = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewMySQLCommentRepository(db).Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}
