package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/expense"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrExpenseNotFound ocorre quando a despesa não existe no escopo atual
var ErrExpenseNotFound = errors.New("despesa não encontrada")

const expenseColumns = `id, tenant_id, description, amount, category, month,
	year, created_at, updated_at`

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{db: db}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	e.TenantID = stampTenant(ctx, e.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx,
		`INSERT INTO expenses (
			id, tenant_id, description, amount, category, month, year,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.TenantID, e.Description, e.Amount, e.Category, e.Month,
		e.Year, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar despesa: %w", err)
	}

	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1 AND `+cond,
		append([]any{id}, args...)...)

	return scanExpense(row)
}

// ListByPeriod implementa expense.Repository.ListByPeriod
func (r *ExpenseRepository) ListByPeriod(ctx context.Context, month, year int) ([]*expense.Expense, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+expenseColumns+`
		FROM expenses
		WHERE month = $1 AND year = $2 AND `+cond+`
		ORDER BY created_at DESC`,
		append([]any{month, year}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return expenses, nil
}

// SumByPeriod implementa expense.Repository.SumByPeriod
func (r *ExpenseRepository) SumByPeriod(ctx context.Context, month, year int) (float64, error) {
	cond, args := tenantCondition(ctx, 3)
	var total float64
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE month = $1 AND year = $2 AND `+cond,
		append([]any{month, year}, args...)...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar despesas: %w", err)
	}
	return total, nil
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	cond, args := tenantCondition(ctx, 8)
	callArgs := append([]any{e.Description, e.Amount, e.Category, e.Month,
		e.Year, e.UpdatedAt, e.ID}, args...)

	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		`UPDATE expenses SET
			description = $1, amount = $2, category = $3, month = $4,
			year = $5, updated_at = $6
		WHERE id = $7 AND `+cond,
		callArgs...)

	if err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	cond, args := tenantCondition(ctx, 2)
	q := database.QuerierFrom(ctx, r.db)
	result, err := q.Exec(ctx,
		"DELETE FROM expenses WHERE id = $1 AND "+cond,
		append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("erro ao excluir despesa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// scanExpense lê uma linha de despesa
func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.TenantID, &e.Description, &e.Amount,
		&e.Category, &e.Month, &e.Year, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}
	return &e, nil
}
