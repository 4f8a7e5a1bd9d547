package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	CostPrice float64 `json:"cost_price" binding:"min=0"`
	SalePrice float64 `json:"sale_price" binding:"min=0"`
	Stock     int     `json:"stock" binding:"min=0"`
}

// ProductResponse representa a resposta com dados de produto
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CostPrice float64   `json:"cost_price"`
	SalePrice float64   `json:"sale_price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProductResponse converte a entidade em resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos em respostas
func ToProductListResponse(products []*product.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ToProductResponse(p))
	}
	return resp
}
