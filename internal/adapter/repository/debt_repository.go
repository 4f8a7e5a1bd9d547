package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDebtNotFound ocorre quando o fiado não existe no escopo atual
var ErrDebtNotFound = errors.New("fiado não encontrado")

const debtColumns = `id, tenant_id, member_id, member_name, items,
	total_amount, paid_amount, status, created_at, paid_at`

// DebtRepository implementa a interface debt.Repository
type DebtRepository struct {
	db *pgxpool.Pool
}

// NewDebtRepository cria uma nova instância de DebtRepository
func NewDebtRepository(db *pgxpool.Pool) debt.Repository {
	return &DebtRepository{db: db}
}

// Create implementa debt.Repository.Create
func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	d.TenantID = stampTenant(ctx, d.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err = q.Exec(ctx,
		`INSERT INTO debts (
			id, tenant_id, member_id, member_name, items, total_amount,
			paid_amount, status, created_at, paid_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.TenantID, d.MemberID, d.MemberName, items, d.TotalAmount,
		d.PaidAmount, d.Status, d.CreatedAt, d.PaidAt)

	if err != nil {
		return fmt.Errorf("erro ao criar fiado: %w", err)
	}

	return nil
}

// FindByID implementa debt.Repository.FindByID. Dentro de uma transação a
// linha é lida com FOR UPDATE.
func (r *DebtRepository) FindByID(ctx context.Context, id string) (*debt.Debt, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+debtColumns+` FROM debts
		WHERE id = $1 AND `+cond+` FOR UPDATE`,
		append([]any{id}, args...)...)

	return scanDebt(row)
}

// ListPending implementa debt.Repository.ListPending
func (r *DebtRepository) ListPending(ctx context.Context) ([]*debt.Debt, error) {
	cond, args := tenantCondition(ctx, 1)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+debtColumns+`
		FROM debts
		WHERE status = 'pending' AND `+cond+`
		ORDER BY created_at ASC, id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fiados pendentes: %w", err)
	}
	defer rows.Close()

	return scanDebtRows(rows)
}

// FindPendingByMember implementa debt.Repository.FindPendingByMember.
// A ordenação (created_at, id) é a política de alocação da liquidação:
// obrigações mais antigas são quitadas primeiro. O FOR UPDATE serializa
// liquidações concorrentes do mesmo sócio dentro de uma transação.
func (r *DebtRepository) FindPendingByMember(ctx context.Context, memberID string) ([]*debt.Debt, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+debtColumns+`
		FROM debts
		WHERE member_id = $1 AND status = 'pending' AND `+cond+`
		ORDER BY created_at ASC, id ASC
		FOR UPDATE`,
		append([]any{memberID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fiados pendentes: %w", err)
	}
	defer rows.Close()

	return scanDebtRows(rows)
}

// ListByMember implementa debt.Repository.ListByMember
func (r *DebtRepository) ListByMember(ctx context.Context, memberID string) ([]*debt.Debt, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+debtColumns+`
		FROM debts
		WHERE member_id = $1 AND `+cond+`
		ORDER BY created_at DESC`,
		append([]any{memberID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fiados do sócio: %w", err)
	}
	defer rows.Close()

	return scanDebtRows(rows)
}

// Update implementa debt.Repository.Update
func (r *DebtRepository) Update(ctx context.Context, d *debt.Debt) error {
	cond, args := tenantCondition(ctx, 5)
	callArgs := append([]any{d.PaidAmount, d.Status, d.PaidAt, d.ID}, args...)

	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE debts SET paid_amount = $1, status = $2, paid_at = $3
		WHERE id = $4 AND `+cond,
		callArgs...)

	if err != nil {
		return fmt.Errorf("erro ao atualizar fiado: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDebtNotFound
	}

	return nil
}

// scanDebt lê uma linha de fiado, convertendo os itens JSON
func scanDebt(row pgx.Row) (*debt.Debt, error) {
	var d debt.Debt
	var itemsJSON []byte

	err := row.Scan(&d.ID, &d.TenantID, &d.MemberID, &d.MemberName,
		&itemsJSON, &d.TotalAmount, &d.PaidAmount, &d.Status, &d.CreatedAt,
		&d.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fiado: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &d.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	return &d, nil
}

// scanDebtRows processa resultados de consultas que retornam múltiplos fiados
func scanDebtRows(rows pgx.Rows) ([]*debt.Debt, error) {
	debts := make([]*debt.Debt, 0)

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return debts, nil
}
