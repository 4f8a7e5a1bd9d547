package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/academia-backoffice/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	svc, err := NewJWTService()
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	tenantID := "t1"
	u, err := user.NewUser(&tenantID, "Hugo", "hugo@academia.com", "senha123", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, "hugo@academia.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser(nil, "Hugo", "hugo@academia.com", "senha123", user.RoleSuperAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("nem-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsOtherKey(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser(nil, "Hugo", "hugo@academia.com", "senha123", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "outra-chave")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTenantClaims(t *testing.T) {
	svc := newTestService(t)

	tenantID := "t1"
	u, err := user.NewUser(&tenantID, "Hugo", "hugo@academia.com", "senha123", user.RoleStaff)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	claims, err := svc.ParseTenantClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, "staff", claims.Role)

	_, err = svc.ParseTenantClaims("invalido")
	assert.Error(t, err)
}

func TestSuperAdminTokenHasNoTenant(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser(nil, "Root", "root@plataforma.com", "senha123", user.RoleSuperAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	claims, err := svc.ParseTenantClaims(token)
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
	assert.Equal(t, "superadmin", claims.Role)
}
