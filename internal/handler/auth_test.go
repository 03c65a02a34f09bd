package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/handler"
	"bookshelf/internal/models"
	"bookshelf/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupAuthRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", handler.NewAuthHandler(svc).Login)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockAuthService)
		r := setupAuthRouter(svc)

		svc.On("Login", mock.Anything, "alice", "secret").
			Return(&models.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "secret", Role: "reader"}, nil).Once()

		w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "secret"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.NotContains(t, resp, "password")
		svc.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := new(MockAuthService)
		r := setupAuthRouter(svc)

		svc.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid username or password", resp["error"])
	})

	t.Run("MissingUsername", func(t *testing.T) {
		svc := new(MockAuthService)
		r := setupAuthRouter(svc)

		w := doJSON(r, http.MethodPost, "/login", gin.H{"password": "secret"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Username and password required", resp["error"])
		svc.AssertNotCalled(t, "Login")
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		svc := new(MockAuthService)
		r := setupAuthRouter(svc)

		w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Login")
	})
}
