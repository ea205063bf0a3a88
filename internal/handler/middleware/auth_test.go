//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geresaco/internal/domain/user"
	"geresaco/internal/handler/middleware"
	"geresaco/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := middleware.NewAuthMiddleware(svc)
	router := gin.New()

	authed := router.Group("", m.RequireAuth())
	authed.GET("/whoami", func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "rol": role.String()})
	})
	authed.GET("/admin-only", m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	svc := jwt.NewService("test-secret", 30*time.Minute)
	router := setupAuthRouter(t, svc)

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes and sets identity", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(42, "ana@example.com", user.RoleUser)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":42`)
		assert.Contains(t, rec.Body.String(), `"rol":"user"`)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	svc := jwt.NewService("test-secret", 30*time.Minute)
	router := setupAuthRouter(t, svc)

	t.Run("regular user is forbidden", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(42, "ana@example.com", user.RoleUser)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(1, "admin@example.com", user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
