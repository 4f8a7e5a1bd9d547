package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
	pkgtenant "github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

// TenantResolver implementa pkgtenant.SlugResolver sobre o repositório de
// tenants, para o middleware de resolução de escopo
type TenantResolver struct {
	repository tenant.Repository
}

// NewTenantResolver cria uma nova instância de TenantResolver
func NewTenantResolver(repository tenant.Repository) *TenantResolver {
	return &TenantResolver{repository: repository}
}

// ResolveSlug resolve um slug de subdomínio para o ID do tenant
func (r *TenantResolver) ResolveSlug(ctx context.Context, slug string) (string, error) {
	t, err := r.repository.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return "", pkgtenant.ErrTenantNotFound
		}
		return "", fmt.Errorf("erro ao buscar academia pelo slug: %w", err)
	}
	return t.ID, nil
}
