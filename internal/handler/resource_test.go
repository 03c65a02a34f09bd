package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookshelf/internal/dto"
	"bookshelf/internal/handler"
	"bookshelf/internal/models"
	"bookshelf/internal/resource"
)

// --- MOCK SERVICE ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserService) Update(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- SETUP ---

func setupUserRouter(svc *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewResource[models.User]("User", svc, resource.UserFields(),
		func(u models.User) any { return dto.FromUser(u) })
	h.RegisterRoutes(r.Group("/users"))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestResourceHandler_List(t *testing.T) {
	svc := new(MockUserService)
	r := setupUserRouter(svc)

	users := []models.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Password: "secret", Role: "reader"},
		{ID: 2, Username: "bob", Email: "bob@example.com", Password: "secret", Role: "admin"},
	}
	svc.On("List", mock.Anything).Return(users, nil).Once()

	w := doJSON(r, http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0]["username"])
	assert.NotContains(t, resp[0], "password")
	svc.AssertExpectations(t)
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.Password == "secret"
		})).Return(nil).Once()

		w := doJSON(r, http.MethodPost, "/users", gin.H{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "secret",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.NotContains(t, resp, "password")
		svc.AssertExpectations(t)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		w := doJSON(r, http.MethodPost, "/users", gin.H{
			"username": "alice",
			"password": "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], `missing required field "email"`)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("StoreRejection", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Create", mock.Anything, mock.Anything).
			Return(gorm.ErrDuplicatedKey).Once()

		w := doJSON(r, http.MethodPost, "/users", gin.H{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestResourceHandler_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Get", mock.Anything, int64(7)).
			Return(&models.User{ID: 7, Username: "alice"}, nil).Once()

		w := doJSON(r, http.MethodGet, "/users/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Get", mock.Anything, int64(99)).
			Return(nil, gorm.ErrRecordNotFound).Once()

		w := doJSON(r, http.MethodGet, "/users/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp["error"])
	})

	t.Run("InvalidID", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		w := doJSON(r, http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResourceHandler_Update(t *testing.T) {
	t.Run("MergesOnlySuppliedKeys", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		existing := models.User{ID: 7, Username: "alice", Email: "alice@example.com", Password: "secret", Role: "reader"}
		svc.On("Get", mock.Anything, int64(7)).Return(&existing, nil).Once()
		svc.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "new@example.com" && u.Username == "alice" && u.Role == "reader"
		})).Return(nil).Once()

		w := doJSON(r, http.MethodPatch, "/users/7", gin.H{"email": "new@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownAttribute", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Get", mock.Anything, int64(7)).
			Return(&models.User{ID: 7, Username: "alice"}, nil).Once()

		w := doJSON(r, http.MethodPatch, "/users/7", gin.H{"is_admin": true})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], `unknown field "is_admin"`)
		svc.AssertNotCalled(t, "Update")
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Get", mock.Anything, int64(99)).
			Return(nil, gorm.ErrRecordNotFound).Once()

		w := doJSON(r, http.MethodPatch, "/users/99", gin.H{"email": "x@example.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResourceHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

		w := doJSON(r, http.MethodDelete, "/users/7", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc)

		svc.On("Delete", mock.Anything, int64(99)).
			Return(gorm.ErrRecordNotFound).Once()

		w := doJSON(r, http.MethodDelete, "/users/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp["error"])
	})
}
