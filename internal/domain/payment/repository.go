package payment

import (
	"context"
)

// Repository define a interface para operações de repositório de recebimentos.
// As linhas são imutáveis: não há operação de atualização.
type Repository interface {
	// Create registra um novo recebimento
	Create(ctx context.Context, p *Payment) error

	// FindByID busca um recebimento pelo ID
	FindByID(ctx context.Context, id string) (*Payment, error)

	// ListByPeriod lista os recebimentos de uma competência (mês/ano)
	ListByPeriod(ctx context.Context, month, year int) ([]*Payment, error)

	// ListByMember lista os recebimentos de um sócio
	ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*Payment, error)

	// SumByPeriod soma os recebimentos de uma competência separados por tipo
	SumByPeriod(ctx context.Context, month, year int) (map[Type]float64, error)

	// Delete remove um recebimento (correção administrativa)
	Delete(ctx context.Context, id string) error
}
