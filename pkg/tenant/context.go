package tenant

import (
	"context"
)

type contextKey struct{}

// Scope representa o escopo de tenant resolvido para uma requisição.
// Super indica um superadmin isento de isolamento entre tenants;
// TenantID vazio com Super falso significa "dados legados" (sem tenant).
type Scope struct {
	TenantID string
	Super    bool
}

// WithScope instala um escopo de tenant no contexto da requisição
func WithScope(ctx context.Context, tenantID string) context.Context {
	scope, _ := ctx.Value(contextKey{}).(Scope)
	scope.TenantID = tenantID
	return context.WithValue(ctx, contextKey{}, scope)
}

// WithSuper marca o contexto como pertencente a um superadmin
func WithSuper(ctx context.Context) context.Context {
	scope, _ := ctx.Value(contextKey{}).(Scope)
	scope.Super = true
	return context.WithValue(ctx, contextKey{}, scope)
}

// TenantID retorna o tenant do escopo instalado, se houver
func TenantID(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(contextKey{}).(Scope)
	if !ok || scope.TenantID == "" {
		return "", false
	}
	return scope.TenantID, true
}

// IsSuper indica se a requisição pertence a um superadmin
func IsSuper(ctx context.Context) bool {
	scope, ok := ctx.Value(contextKey{}).(Scope)
	return ok && scope.Super
}
