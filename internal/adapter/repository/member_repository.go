package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/academia-backoffice/internal/domain/member"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrMemberNotFound     = errors.New("sócio não encontrado")
	ErrMemberDuplicateKey = errors.New("sócio com mesmo documento já existe")
)

const memberColumns = `id, tenant_id, document, name, phone, plan_type,
	plan_cost, active, exempt, family_head_id, created_at, updated_at`

// MemberRepository implementa a interface member.Repository
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository cria uma nova instância de MemberRepository
func NewMemberRepository(db *pgxpool.Pool) member.Repository {
	return &MemberRepository{db: db}
}

// Create implementa member.Repository.Create
func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	exists, err := r.ExistsByDocument(ctx, m.Document)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do sócio: %w", err)
	}
	if exists {
		return ErrMemberDuplicateKey
	}

	m.TenantID = stampTenant(ctx, m.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err = q.Exec(ctx,
		`INSERT INTO members (
			id, tenant_id, document, name, phone, plan_type, plan_cost,
			active, exempt, family_head_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.TenantID, m.Document, m.Name, m.Phone, m.PlanType, m.PlanCost,
		m.Active, m.Exempt, m.FamilyHeadID, m.CreatedAt, m.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrMemberDuplicateKey
		}
		return fmt.Errorf("erro ao criar sócio: %w", err)
	}

	return nil
}

// FindByID implementa member.Repository.FindByID
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = $1 AND `+cond,
		append([]any{id}, args...)...)

	return scanMember(row)
}

// FindByDocument implementa member.Repository.FindByDocument
func (r *MemberRepository) FindByDocument(ctx context.Context, document string) (*member.Member, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE document = $1 AND `+cond,
		append([]any{document}, args...)...)

	return scanMember(row)
}

// FindByName implementa member.Repository.FindByName
func (r *MemberRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*member.Member, error) {
	cond, args := tenantCondition(ctx, 4)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+memberColumns+`
		FROM members
		WHERE name ILIKE $1 AND `+cond+`
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		append([]any{"%" + name + "%", limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar sócios: %w", err)
	}
	defer rows.Close()

	return scanMemberRows(rows)
}

// List implementa member.Repository.List
func (r *MemberRepository) List(ctx context.Context, limit, offset int) ([]*member.Member, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+memberColumns+`
		FROM members
		WHERE `+cond+`
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar sócios: %w", err)
	}
	defer rows.Close()

	return scanMemberRows(rows)
}

// Update implementa member.Repository.Update
func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	cond, args := tenantCondition(ctx, 11)
	callArgs := append([]any{m.Document, m.Name, m.Phone, m.PlanType,
		m.PlanCost, m.Active, m.Exempt, m.FamilyHeadID, m.UpdatedAt, m.ID},
		args...)

	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE members SET
			document = $1, name = $2, phone = $3, plan_type = $4,
			plan_cost = $5, active = $6, exempt = $7, family_head_id = $8,
			updated_at = $9
		WHERE id = $10 AND `+cond,
		callArgs...)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrMemberDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar sócio: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Delete implementa member.Repository.Delete
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		"DELETE FROM members WHERE id = $1 AND "+cond,
		append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("erro ao excluir sócio: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Count implementa member.Repository.Count
func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	cond, args := tenantCondition(ctx, 1)
	var count int
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx,
		"SELECT COUNT(*) FROM members WHERE "+cond, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar sócios: %w", err)
	}
	return count, nil
}

// ExistsByDocument implementa member.Repository.ExistsByDocument
func (r *MemberRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	cond, args := tenantCondition(ctx, 2)
	var exists bool
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM members WHERE document = $1 AND "+cond+")",
		append([]any{document}, args...)...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do sócio: %w", err)
	}
	return exists, nil
}

// scanMember lê uma linha de sócio
func scanMember(row pgx.Row) (*member.Member, error) {
	var m member.Member
	err := row.Scan(&m.ID, &m.TenantID, &m.Document, &m.Name, &m.Phone,
		&m.PlanType, &m.PlanCost, &m.Active, &m.Exempt, &m.FamilyHeadID,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("erro ao buscar sócio: %w", err)
	}
	return &m, nil
}

// scanMemberRows processa resultados de consultas que retornam múltiplos sócios
func scanMemberRows(rows pgx.Rows) ([]*member.Member, error) {
	members := make([]*member.Member, 0)

	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return members, nil
}
