package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/academia-backoffice/internal/domain/user"
)

func authRouter(svc *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	r := authRouter(newTestService(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareMalformedHeader(t *testing.T) {
	r := authRouter(newTestService(t))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "formato de token inválido")
}

func TestJWTAuthMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	t.Setenv("JWT_EXPIRATION_HOURS", "-1")
	expired, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser(nil, "Hugo", "hugo@academia.com", "senha123", user.RoleAdmin)
	require.NoError(t, err)
	token, err := expired.GenerateToken(u)
	require.NoError(t, err)

	r := authRouter(expired)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expirado")
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser(nil, "Hugo", "hugo@academia.com", "senha123", user.RoleAdmin)
	require.NoError(t, err)
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	r := authRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), u.ID)
}

func TestRoleAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set("user_role", "staff")
		c.Next()
	}, RoleAuthMiddleware("admin", "superadmin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/ok", func(c *gin.Context) {
		c.Set("user_role", "admin")
		c.Next()
	}, RoleAuthMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
