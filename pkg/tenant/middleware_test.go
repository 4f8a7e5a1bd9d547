package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	claims map[string]*TokenClaims
}

func (p *fakeParser) ParseTenantClaims(token string) (*TokenClaims, error) {
	claims, ok := p.claims[token]
	if !ok {
		return nil, ErrTenantNotFound
	}
	return claims, nil
}

type fakeResolver struct {
	slugs map[string]string
}

func (r *fakeResolver) ResolveSlug(ctx context.Context, slug string) (string, error) {
	id, ok := r.slugs[slug]
	if !ok {
		return "", ErrTenantNotFound
	}
	return id, nil
}

// capturedScope registra o escopo visto pelo handler final
type capturedScope struct {
	tenantID string
	scoped   bool
	super    bool
}

func setupRouter(parser TokenParser, resolver SlugResolver) (*gin.Engine, *capturedScope) {
	gin.SetMode(gin.TestMode)
	captured := &capturedScope{}

	r := gin.New()
	r.Use(Resolver(parser, resolver))
	r.GET("/ping", func(c *gin.Context) {
		ctx := c.Request.Context()
		captured.tenantID, captured.scoped = TenantID(ctx)
		captured.super = IsSuper(ctx)
		c.Status(http.StatusOK)
	})
	return r, captured
}

func perform(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResolverSlugSetsScope(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{}}
	resolver := &fakeResolver{slugs: map[string]string{"ironberg": "t1"}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{SlugHeader: "ironberg"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.scoped)
	assert.Equal(t, "t1", captured.tenantID)
	assert.False(t, captured.super)
}

func TestResolverUnknownSlug(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{}}
	resolver := &fakeResolver{slugs: map[string]string{}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{SlugHeader: "inexistente"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, captured.scoped)
}

func TestResolverTokenMismatch(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{
		"tok-a": {TenantID: "t-a", Role: "admin"},
	}}
	resolver := &fakeResolver{slugs: map[string]string{"outra": "t-b"}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{
		"Authorization": "Bearer tok-a",
		SlugHeader:      "outra",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, captured.scoped)
}

func TestResolverSuperAdminBypassesMismatch(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{
		"tok-super": {Role: RoleSuperAdmin},
	}}
	resolver := &fakeResolver{slugs: map[string]string{"ironberg": "t1"}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{
		"Authorization": "Bearer tok-super",
		SlugHeader:      "ironberg",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.super)
	// O superadmin navega no tenant indicado pelo slug
	assert.Equal(t, "t1", captured.tenantID)
}

func TestResolverTokenClaimWithoutSlug(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{
		"tok-a": {TenantID: "t-a", Role: "staff"},
	}}
	resolver := &fakeResolver{slugs: map[string]string{}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{"Authorization": "Bearer tok-a"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "t-a", captured.tenantID)
}

func TestResolverLegacyRequestPasses(t *testing.T) {
	// Sem token e sem slug a requisição nunca é rejeitada: segue sem escopo
	parser := &fakeParser{claims: map[string]*TokenClaims{}}
	resolver := &fakeResolver{slugs: map[string]string{}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, captured.scoped)
	assert.False(t, captured.super)
}

func TestResolverInvalidTokenTreatedAsAbsent(t *testing.T) {
	parser := &fakeParser{claims: map[string]*TokenClaims{}}
	resolver := &fakeResolver{slugs: map[string]string{"ironberg": "t1"}}
	r, captured := setupRouter(parser, resolver)

	w := perform(r, map[string]string{
		"Authorization": "Bearer token-invalido",
		SlugHeader:      "ironberg",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "t1", captured.tenantID)
}
