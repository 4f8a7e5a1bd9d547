package debt

import (
	"context"
)

// Repository define a interface para operações de repositório de fiados
type Repository interface {
	// Create cria um novo fiado
	Create(ctx context.Context, d *Debt) error

	// FindByID busca um fiado pelo ID
	FindByID(ctx context.Context, id string) (*Debt, error)

	// ListPending lista todos os fiados pendentes do escopo atual,
	// do mais antigo para o mais recente
	ListPending(ctx context.Context) ([]*Debt, error)

	// FindPendingByMember lista os fiados pendentes de um sócio ordenados
	// do mais antigo para o mais recente (created_at, id). Dentro de uma
	// transação as linhas retornadas ficam bloqueadas até o commit, para
	// serializar liquidações concorrentes do mesmo sócio.
	FindPendingByMember(ctx context.Context, memberID string) ([]*Debt, error)

	// ListByMember lista todos os fiados de um sócio, pendentes ou não
	ListByMember(ctx context.Context, memberID string) ([]*Debt, error)

	// Update persiste o estado de um fiado após uma liquidação
	Update(ctx context.Context, d *Debt) error
}
