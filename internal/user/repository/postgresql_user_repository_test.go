package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	"github.com/allisson/piiguard/internal/testutil"
	"github.com/allisson/piiguard/internal/user/domain"
)

func TestPostgreSQLUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	err := NewPostgreSQLUserRepository(db).Create(context.Background(), &domain.User{
		ID: "u-1", PasswordHash: "hash", Role: authDomain.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestPostgreSQLUserRepository_Update_Placeholders(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(
		"UPDATE users SET email = \\$1, password_hash = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3",
	).
		WithArgs("enc", "hash", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	hash := "hash"
	err := NewPostgreSQLUserRepository(db).Update(context.Background(), "u-1", domain.UserPatch{
		Email:        ptr("enc"),
		PasswordHash: &hash,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPostgreSQLUserRepository(db).Update(context.Background(), "missing", domain.UserPatch{
		FullName: ptr("enc"),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPostgreSQLUserRepository_List_Query(t *testing.T) {
	now := time.Now().UTC()
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("a", nil, nil, "h", "user", now, now))

	users, err := NewPostgreSQLUserRepository(db).List(context.Background(), 0, 50)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestPostgreSQLUserRepository_Integration(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:           "pg-user-1",
		Email:        ptr("v1:encrypted-email"),
		PasswordHash: "hash",
		Role:         authDomain.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.ErrorIs(t, repo.Create(ctx, user), domain.ErrUserAlreadyExists)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1:encrypted-email", *got.Email)
	assert.Nil(t, got.FullName)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, repo.Update(ctx, user.ID, domain.UserPatch{FullName: ptr("v1:name")}))

	users, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "v1:name", *users[0].FullName)

	testutil.CreateTestFeatureRequest(t, db, "postgres", user.ID)
	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), domain.ErrUserNotFound)

	_, err = repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
