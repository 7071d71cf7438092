package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	"github.com/allisson/piiguard/internal/auth/http/dto"
	"github.com/allisson/piiguard/internal/auth/http/mocks"
	userDomain "github.com/allisson/piiguard/internal/user/domain"
	userUseCase "github.com/allisson/piiguard/internal/user/usecase"
)

// mockUserUseCase implements the user UseCase methods the login handler needs.
type mockUserUseCase struct {
	userUseCase.UseCase
	mock.Mock
}

func (m *mockUserUseCase) Get(ctx context.Context, id string) (*userDomain.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.UserView), args.Error(1)
}

func setupLoginRouter() (*gin.Engine, *mocks.MockAuthUseCase, *mockUserUseCase) {
	authUC := &mocks.MockAuthUseCase{}
	userUC := &mockUserUseCase{}
	handler := NewAuthHandler(authUC, userUC, createTestLogger())

	router := gin.New()
	router.POST("/v1/auth/login", handler.LoginHandler)
	return router, authUC, userUC
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		router, authUC, userUC := setupLoginRouter()
		output := &authDomain.LoginOutput{
			Principal: authDomain.Principal{Subject: "alice", Role: authDomain.RoleAdmin},
			Token: authDomain.IssuedToken{
				ID:        "jti-1",
				Token:     "signed.jwt.value",
				IssuedAt:  now,
				ExpiresAt: now.Add(time.Hour),
			},
		}
		view := &userDomain.UserView{
			ID:        "alice",
			Email:     "a***@example.com",
			FullName:  "A*** S***",
			Role:      authDomain.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		authUC.On("Authenticate", mock.Anything, "alice", "S3cret!pw").Return(output, nil).Once()
		userUC.On("Get", mock.Anything, "alice").Return(view, nil).Once()

		w := postLogin(router, `{"user_id":"alice","password":"S3cret!pw"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.value", resp.Token)
		assert.Equal(t, "admin", resp.Role)
		assert.True(t, now.Add(time.Hour).Equal(resp.ExpiresAt))
		assert.Equal(t, "a***@example.com", resp.User.Email)
		assert.Equal(t, "A*** S***", resp.User.FullName)
		assert.NotContains(t, w.Body.String(), "S3cret!pw")
		authUC.AssertExpectations(t)
		userUC.AssertExpectations(t)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		router, authUC, userUC := setupLoginRouter()
		authUC.On("Authenticate", mock.Anything, "alice", "wrong").
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		w := postLogin(router, `{"user_id":"alice","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		userUC.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		router, authUC, _ := setupLoginRouter()

		w := postLogin(router, `{"user_id":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		authUC.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		router, authUC, _ := setupLoginRouter()

		w := postLogin(router, `{"user_id":"alice"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		authUC.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ProfileLookupFails", func(t *testing.T) {
		router, authUC, userUC := setupLoginRouter()
		output := &authDomain.LoginOutput{
			Principal: authDomain.Principal{Subject: "ghost", Role: authDomain.RoleUser},
			Token:     authDomain.IssuedToken{Token: "t", ExpiresAt: now},
		}
		authUC.On("Authenticate", mock.Anything, "ghost", "pw").Return(output, nil).Once()
		userUC.On("Get", mock.Anything, "ghost").Return(nil, userDomain.ErrUserNotFound).Once()

		w := postLogin(router, `{"user_id":"ghost","password":"pw"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
