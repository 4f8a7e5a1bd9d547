package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrTenantNotFound     = errors.New("academia não encontrada")
	ErrTenantDuplicateKey = errors.New("academia com mesmo slug já existe")
)

// TenantRepository implementa a interface tenant.Repository.
// A tabela de tenants é global: não recebe o filtro de escopo.
type TenantRepository struct {
	db *pgxpool.Pool
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	branding, err := json.Marshal(t.Branding)
	if err != nil {
		return fmt.Errorf("erro ao converter branding para JSON: %w", err)
	}

	partners, err := json.Marshal(t.Partners)
	if err != nil {
		return fmt.Errorf("erro ao converter sócios para JSON: %w", err)
	}

	q := database.QuerierFrom(ctx, r.db)
	_, err = q.Exec(ctx,
		`INSERT INTO tenants (
			id, slug, name, branding, partners, instructor_hourly_rate,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.Slug, t.Name, branding, partners, t.InstructorHourlyRate,
		t.CreatedAt, t.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTenantDuplicateKey
		}
		return fmt.Errorf("erro ao criar academia: %w", err)
	}

	return nil
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT id, slug, name, branding, partners, instructor_hourly_rate,
			created_at, updated_at
		FROM tenants WHERE id = $1`, id)

	return scanTenant(row)
}

// FindBySlug implementa tenant.Repository.FindBySlug; a comparação é
// case-insensitive porque o slug vem do subdomínio
func (r *TenantRepository) FindBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT id, slug, name, branding, partners, instructor_hourly_rate,
			created_at, updated_at
		FROM tenants WHERE slug = LOWER($1)`, slug)

	return scanTenant(row)
}

// List implementa tenant.Repository.List
func (r *TenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT id, slug, name, branding, partners, instructor_hourly_rate,
			created_at, updated_at
		FROM tenants
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar academias: %w", err)
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tenants, nil
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	branding, err := json.Marshal(t.Branding)
	if err != nil {
		return fmt.Errorf("erro ao converter branding para JSON: %w", err)
	}

	partners, err := json.Marshal(t.Partners)
	if err != nil {
		return fmt.Errorf("erro ao converter sócios para JSON: %w", err)
	}

	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE tenants SET
			name = $1, branding = $2, partners = $3,
			instructor_hourly_rate = $4, updated_at = $5
		WHERE id = $6`,
		t.Name, branding, partners, t.InstructorHourlyRate, t.UpdatedAt, t.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar academia: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Delete implementa tenant.Repository.Delete. Registros dependentes não são
// removidos em cascata: linhas órfãs permanecem com o tenant_id antigo.
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx, "DELETE FROM tenants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir academia: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Count implementa tenant.Repository.Count
func (r *TenantRepository) Count(ctx context.Context) (int, error) {
	var count int
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM tenants").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar academias: %w", err)
	}
	return count, nil
}

// ExistsBySlug implementa tenant.Repository.ExistsBySlug
func (r *TenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM tenants WHERE slug = LOWER($1))",
		slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência da academia: %w", err)
	}
	return exists, nil
}

// scanTenant lê uma linha de tenant, convertendo os campos JSON
func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	var brandingJSON, partnersJSON []byte

	err := row.Scan(&t.ID, &t.Slug, &t.Name, &brandingJSON, &partnersJSON,
		&t.InstructorHourlyRate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("erro ao buscar academia: %w", err)
	}

	if err := json.Unmarshal(brandingJSON, &t.Branding); err != nil {
		return nil, fmt.Errorf("erro ao converter branding: %w", err)
	}

	if err := json.Unmarshal(partnersJSON, &t.Partners); err != nil {
		return nil, fmt.Errorf("erro ao converter sócios: %w", err)
	}

	return &t, nil
}
