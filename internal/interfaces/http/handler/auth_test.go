package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/farmcore/backend/internal/application/identity"
	"github.com/farmcore/backend/internal/domain/identity"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/infrastructure/auth"
	"github.com/farmcore/backend/internal/infrastructure/config"
	"github.com/farmcore/backend/internal/interfaces/http/dto"
	"github.com/farmcore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthTestRouter(users identity.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-handlers",
		Expiration: time.Hour,
		Issuer:     "farmcore-test",
	})
	service := identityapp.NewAuthService(users, jwtService, zap.NewNop())

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewAuthHandler(service).RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers an account and returns a token", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("ExistsByEmail", mock.Anything, "owner@poultry.test").Return(false, nil)
		users.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":     "owner@poultry.test",
			"password":  "str0ngPassword",
			"full_name": "Amina Yusuf",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Account registered successfully", resp.Message)

		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		user := data["user"].(map[string]interface{})
		assert.Equal(t, "owner@poultry.test", user["email"])
		assert.Equal(t, "farm_owner", user["role"])
		users.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email with a conflict", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("ExistsByEmail", mock.Anything, "owner@poultry.test").Return(true, nil)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":     "owner@poultry.test",
			"password":  "str0ngPassword",
			"full_name": "Amina Yusuf",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeConflict, resp.Code)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid payload with field errors", func(t *testing.T) {
		users := new(MockUserRepository)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":     "not-an-email",
			"password":  "short",
			"full_name": "Amina Yusuf",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeValidation, resp.Code)
		assert.NotEmpty(t, resp.Errors)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	newStoredUser := func(t *testing.T) *identity.User {
		user, err := identity.NewUser("owner@poultry.test", "str0ngPassword", "Amina Yusuf", identity.RoleFarmOwner)
		require.NoError(t, err)
		return user
	}

	t.Run("authenticates with valid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "owner@poultry.test").Return(newStoredUser(t), nil)
		users.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "owner@poultry.test",
			"password": "str0ngPassword",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Login successful", resp.Message)
		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
	})

	t.Run("rejects a wrong password without revealing which field failed", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "owner@poultry.test").Return(newStoredUser(t), nil)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "owner@poultry.test",
			"password": "wrongPassword1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Code)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		user := newStoredUser(t)
		require.NoError(t, user.Deactivate())
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "owner@poultry.test").Return(user, nil)

		engine := newAuthTestRouter(users)
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "owner@poultry.test",
			"password": "str0ngPassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Code)
	})
}

func newUserListTestRouter(users identity.UserRepository, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-handlers",
		Expiration: time.Hour,
		Issuer:     "farmcore-test",
	})
	service := identityapp.NewAuthService(users, jwtService, zap.NewNop())

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, uuid.New().String())
		c.Set(middleware.JWTRoleKey, role)
		c.Next()
	})
	NewAuthHandler(service).RegisterRoutes(api)
	return engine
}

func TestAuthHandler_ListUsers(t *testing.T) {
	t.Run("lists accounts for an administrator", func(t *testing.T) {
		owner, err := identity.NewUser("owner@poultry.test", "str0ngPassword", "Amina Yusuf", identity.RoleFarmOwner)
		require.NoError(t, err)
		worker, err := identity.NewUser("worker@poultry.test", "str0ngPassword", "Joseph Kariuki", identity.RoleWorker)
		require.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindAll", mock.Anything, mock.Anything).Return([]identity.User{*owner, *worker}, nil)
		users.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

		engine := newUserListTestRouter(users, string(identity.RoleAdmin))
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users?page=1&page_size=10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(2), resp.Meta.Total)

		items, ok := resp.Data.([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)
		first, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "owner@poultry.test", first["email"])
	})

	t.Run("filters by role via query parameters", func(t *testing.T) {
		worker, err := identity.NewUser("worker@poultry.test", "str0ngPassword", "Joseph Kariuki", identity.RoleWorker)
		require.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["role"] == "worker"
		})).Return([]identity.User{*worker}, nil)
		users.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

		engine := newUserListTestRouter(users, string(identity.RoleAdmin))
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users?role=worker", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)
		users.AssertExpectations(t)
	})

	t.Run("rejects non-administrators", func(t *testing.T) {
		users := new(MockUserRepository)

		engine := newUserListTestRouter(users, string(identity.RoleFarmOwner))
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeForbidden, resp.Code)
		users.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown role filter", func(t *testing.T) {
		users := new(MockUserRepository)

		engine := newUserListTestRouter(users, string(identity.RoleAdmin))
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users?role=manager", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
	})
}
