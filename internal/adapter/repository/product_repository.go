package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/product"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProductNotFound ocorre quando o produto não existe no escopo atual
var ErrProductNotFound = errors.New("produto não encontrado")

const productColumns = `id, tenant_id, name, cost_price, sale_price, stock,
	created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	p.TenantID = stampTenant(ctx, p.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx,
		`INSERT INTO products (
			id, tenant_id, name, cost_price, sale_price, stock,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.TenantID, p.Name, p.CostPrice, p.SalePrice, p.Stock,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID. Dentro de uma transação a
// linha é lida com FOR UPDATE, serializando a venda fiada concorrente.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE id = $1 AND `+cond+` FOR UPDATE`,
		append([]any{id}, args...)...)

	return scanProduct(row)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE `+cond+`
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	cond, args := tenantCondition(ctx, 7)
	callArgs := append([]any{p.Name, p.CostPrice, p.SalePrice, p.Stock,
		p.UpdatedAt, p.ID}, args...)

	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE products SET
			name = $1, cost_price = $2, sale_price = $3, stock = $4,
			updated_at = $5
		WHERE id = $6 AND `+cond,
		callArgs...)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		"DELETE FROM products WHERE id = $1 AND "+cond,
		append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DecrementStock implementa product.Repository.DecrementStock. A condição
// stock >= quantity no próprio UPDATE garante que o abate é atômico: ou a
// linha inteira muda, ou nada muda.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2 AND `+cond,
		append([]any{id, quantity}, args...)...)

	if err != nil {
		return fmt.Errorf("erro ao abater estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Distinguir produto inexistente de estoque insuficiente
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return findErr
		}
		return product.ErrInsufficientStock
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	cond, args := tenantCondition(ctx, 1)
	var count int
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE "+cond, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// scanProduct lê uma linha de produto
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.CostPrice, &p.SalePrice,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}
