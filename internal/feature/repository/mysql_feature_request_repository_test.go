package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	"github.com/allisson/piiguard/internal/feature/domain"
	"github.com/allisson/piiguard/internal/testutil"
)

func TestMySQLFeatureRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	fr := &domain.FeatureRequest{ID: "fr-1", Title: "Dark mode", Content: "Please", UserID: "u-1"}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO feature_requests").
			WithArgs("fr-1", "Dark mode", "Please", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMySQLFeatureRequestRepository(db).Create(ctx, fr))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownUser", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO feature_requests").
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

		err := NewMySQLFeatureRequestRepository(db).Create(ctx, fr)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("Duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO feature_requests").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := NewMySQLFeatureRequestRepository(db).Create(ctx, fr)
		assert.ErrorIs(t, err, domain.ErrFeatureRequestAlreadyExists)
	})
}

func TestMySQLFeatureRequestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM feature_requests WHERE id = ?").
			WithArgs("fr-1").
			WillReturnRows(sqlmock.NewRows(featureRequestColumns).
				AddRow("fr-1", "Dark mode", "Please", "u-1", now, now))

		fr, err := NewMySQLFeatureRequestRepository(db).GetByID(ctx, "fr-1")
		require.NoError(t, err)
		assert.Equal(t, "Dark mode", fr.Title)
		assert.Equal(t, "u-1", fr.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM feature_requests WHERE id = ?").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(featureRequestColumns))

		_, err := NewMySQLFeatureRequestRepository(db).GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrFeatureRequestNotFound)
	})
}

func TestMySQLFeatureRequestRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM feature_requests ORDER BY id LIMIT (.+) OFFSET").
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows(featureRequestColumns).
			AddRow("fr-1", "A", "a", "u-1", now, now).
			AddRow("fr-2", "B", "b", "u-1", now, now))

	items, err := NewMySQLFeatureRequestRepository(db).List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "fr-2", items[1].ID)
}

func TestMySQLFeatureRequestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE feature_requests SET title = (.+), updated_at = NOW\\(\\) WHERE id = ?").
			WithArgs("New title", "fr-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewMySQLFeatureRequestRepository(db).Update(ctx, "fr-1",
			domain.FeatureRequestPatch{Title: ptr("New title")})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnchangedRowStillExists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE feature_requests").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM feature_requests WHERE id = ?").
			WithArgs("fr-1").
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

		err := NewMySQLFeatureRequestRepository(db).Update(ctx, "fr-1",
			domain.FeatureRequestPatch{Title: ptr("Same")})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE feature_requests").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM feature_requests WHERE id = ?").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))

		err := NewMySQLFeatureRequestRepository(db).Update(ctx, "missing",
			domain.FeatureRequestPatch{Content: ptr("x")})
		assert.ErrorIs(t, err, domain.ErrFeatureRequestNotFound)
	})

	t.Run("UnknownNewOwner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE feature_requests").
			WillReturnError(&mysql.MySQLError{Number: 1452})

		err := NewMySQLFeatureRequestRepository(db).Update(ctx, "fr-1",
			domain.FeatureRequestPatch{UserID: ptr("ghost")})
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("EmptyPatch", func(t *testing.T) {
		db, _ := newMockDB(t)
		err := NewMySQLFeatureRequestRepository(db).Update(ctx, "fr-1", domain.FeatureRequestPatch{})
		assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
	})
}

func TestMySQLFeatureRequestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM feature_requests WHERE id = ?").
			WithArgs("fr-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewMySQLFeatureRequestRepository(db).Delete(ctx, "fr-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM feature_requests").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewMySQLFeatureRequestRepository(db).Delete(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrFeatureRequestNotFound)
	})
}

func TestMySQLFeatureRepositories_Integration(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	ctx := context.Background()
	frRepo := NewMySQLFeatureRequestRepository(db)
	commentRepo := NewMySQLCommentRepository(db)
	userID := testutil.CreateTestUser(t, db, "mysql", authDomain.RoleUser.String())

	fr := &domain.FeatureRequest{ID: "fr-int-1", Title: "Export", Content: "CSV please", UserID: userID}
	require.NoError(t, frRepo.Create(ctx, fr))
	assert.ErrorIs(t, frRepo.Create(ctx, fr), domain.ErrFeatureRequestAlreadyExists)

	orphan := &domain.FeatureRequest{ID: "fr-int-2", Title: "x", Content: "y", UserID: "ghost"}
	assert.ErrorIs(t, frRepo.Create(ctx, orphan), domain.ErrUnknownReference)

	comment := &domain.Comment{ID: "c-int-1", Content: "+1", UserID: userID, FeatureRequestID: fr.ID}
	require.NoError(t, commentRepo.Create(ctx, comment))

	listed, err := commentRepo.List(ctx, domain.CommentFilter{FeatureRequestID: fr.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, frRepo.Delete(ctx, fr.ID))
	_, err = commentRepo.GetByID(ctx, comment.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound, "comments cascade with their feature request")
}
