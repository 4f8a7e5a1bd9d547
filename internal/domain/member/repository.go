package member

import (
	"context"
)

// Repository define a interface para operações de repositório de sócios.
// Todas as consultas são filtradas pelo escopo de tenant do contexto.
type Repository interface {
	// Create cria um novo sócio
	Create(ctx context.Context, m *Member) error

	// FindByID busca um sócio pelo ID
	FindByID(ctx context.Context, id string) (*Member, error)

	// FindByDocument busca um sócio pelo documento
	FindByDocument(ctx context.Context, document string) (*Member, error)

	// FindByName busca sócios pelo nome
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Member, error)

	// List lista sócios com paginação
	List(ctx context.Context, limit, offset int) ([]*Member, error)

	// Update atualiza os dados de um sócio existente
	Update(ctx context.Context, m *Member) error

	// Delete remove um sócio
	Delete(ctx context.Context, id string) error

	// Count conta quantos sócios existem no escopo atual
	Count(ctx context.Context) (int, error)

	// ExistsByDocument verifica se um sócio existe pelo documento
	ExistsByDocument(ctx context.Context, document string) (bool, error)
}
