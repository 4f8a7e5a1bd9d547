package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrNegativeStock = errors.New("estoque não pode ser negativo")
)

// Product representa um item do estoque da academia
type Product struct {
	ID        string    `json:"id"`
	TenantID  *string   `json:"tenant_id"`
	Name      string    `json:"name"`
	CostPrice float64   `json:"cost_price"` // Preço de custo
	SalePrice float64   `json:"sale_price"` // Preço de venda
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, costPrice, salePrice float64, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		CostPrice: costPrice,
		SalePrice: salePrice,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name string, costPrice, salePrice float64, stock int) error {
	if name == "" {
		return ErrEmptyName
	}
	if stock < 0 {
		return ErrNegativeStock
	}

	p.Name = name
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// HasStock verifica se há estoque suficiente para a quantidade pedida
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
