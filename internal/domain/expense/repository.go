package expense

import (
	"context"
)

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	// Create registra uma nova despesa
	Create(ctx context.Context, e *Expense) error

	// FindByID busca uma despesa pelo ID
	FindByID(ctx context.Context, id string) (*Expense, error)

	// ListByPeriod lista as despesas de uma competência (mês/ano)
	ListByPeriod(ctx context.Context, month, year int) ([]*Expense, error)

	// SumByPeriod soma as despesas de uma competência
	SumByPeriod(ctx context.Context, month, year int) (float64, error)

	// Update atualiza os dados de uma despesa existente
	Update(ctx context.Context, e *Expense) error

	// Delete remove uma despesa
	Delete(ctx context.Context, id string) error
}
