package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPaymentNotFound ocorre quando o recebimento não existe no escopo atual
var ErrPaymentNotFound = errors.New("recebimento não encontrado")

const paymentColumns = `id, tenant_id, member_id, member_name, amount, type,
	month, year, comment, created_at`

// PaymentRepository implementa a interface payment.Repository
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository cria uma nova instância de PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) payment.Repository {
	return &PaymentRepository{db: db}
}

// Create implementa payment.Repository.Create
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	p.TenantID = stampTenant(ctx, p.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx,
		`INSERT INTO payments (
			id, tenant_id, member_id, member_name, amount, type, month,
			year, comment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.TenantID, p.MemberID, p.MemberName, p.Amount, p.Type,
		p.Month, p.Year, p.Comment, p.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar recebimento: %w", err)
	}

	return nil
}

// FindByID implementa payment.Repository.FindByID
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1 AND `+cond,
		append([]any{id}, args...)...)

	return scanPayment(row)
}

// ListByPeriod implementa payment.Repository.ListByPeriod
func (r *PaymentRepository) ListByPeriod(ctx context.Context, month, year int) ([]*payment.Payment, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+paymentColumns+`
		FROM payments
		WHERE month = $1 AND year = $2 AND `+cond+`
		ORDER BY created_at DESC`,
		append([]any{month, year}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar recebimentos: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// ListByMember implementa payment.Repository.ListByMember
func (r *PaymentRepository) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*payment.Payment, error) {
	cond, args := tenantCondition(ctx, 4)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+paymentColumns+`
		FROM payments
		WHERE member_id = $1 AND `+cond+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		append([]any{memberID, limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar recebimentos do sócio: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// SumByPeriod implementa payment.Repository.SumByPeriod
func (r *PaymentRepository) SumByPeriod(ctx context.Context, month, year int) (map[payment.Type]float64, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT type, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE month = $1 AND year = $2 AND `+cond+`
		GROUP BY type`,
		append([]any{month, year}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar recebimentos: %w", err)
	}
	defer rows.Close()

	sums := make(map[payment.Type]float64)
	for rows.Next() {
		var t payment.Type
		var total float64
		if err := rows.Scan(&t, &total); err != nil {
			return nil, fmt.Errorf("erro ao ler soma de recebimentos: %w", err)
		}
		sums[t] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sums, nil
}

// Delete implementa payment.Repository.Delete
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		"DELETE FROM payments WHERE id = $1 AND "+cond,
		append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("erro ao excluir recebimento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// scanPayment lê uma linha de recebimento
func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(&p.ID, &p.TenantID, &p.MemberID, &p.MemberName,
		&p.Amount, &p.Type, &p.Month, &p.Year, &p.Comment, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar recebimento: %w", err)
	}
	return &p, nil
}

// scanPaymentRows processa resultados de consultas que retornam múltiplos recebimentos
func scanPaymentRows(rows pgx.Rows) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return payments, nil
}
