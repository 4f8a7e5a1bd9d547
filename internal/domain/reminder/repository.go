package reminder

import (
	"context"
)

// Repository define a interface para os marcadores de cobrança enviada
type Repository interface {
	// Create registra um marcador de cobrança; sempre insere uma nova linha
	Create(ctx context.Context, r *Reminder) error

	// ListByPeriod lista os marcadores de uma competência (mês/ano)
	ListByPeriod(ctx context.Context, month, year int) ([]*Reminder, error)
}
