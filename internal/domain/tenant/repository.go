package tenant

import (
	"context"
)

// Repository define a interface para operações de repositório de tenants
type Repository interface {
	// Create cria um novo tenant
	Create(ctx context.Context, t *Tenant) error

	// FindByID busca um tenant pelo ID
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// FindBySlug busca um tenant pelo slug (case-insensitive)
	FindBySlug(ctx context.Context, slug string) (*Tenant, error)

	// List lista tenants com paginação
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// Update atualiza os dados de um tenant existente
	Update(ctx context.Context, t *Tenant) error

	// Delete remove um tenant; registros dependentes não são removidos em cascata
	Delete(ctx context.Context, id string) error

	// Count conta quantos tenants existem
	Count(ctx context.Context) (int, error)

	// ExistsBySlug verifica se um tenant existe pelo slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
