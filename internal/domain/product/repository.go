package product

import (
	"context"
	"errors"
)

// ErrInsufficientStock ocorre quando o estoque é menor que a quantidade pedida
var ErrInsufficientStock = errors.New("estoque insuficiente")

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// DecrementStock abate quantity do estoque do produto de forma atômica;
	// retorna ErrInsufficientStock sem alterar nada quando o estoque é menor
	// que quantity. Dentro de uma transação a linha permanece bloqueada até
	// o commit.
	DecrementStock(ctx context.Context, id string, quantity int) error

	// Count conta quantos produtos existem no escopo atual
	Count(ctx context.Context) (int, error)
}
