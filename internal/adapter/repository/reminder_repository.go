package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/reminder"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReminderRepository implementa a interface reminder.Repository
type ReminderRepository struct {
	db *pgxpool.Pool
}

// NewReminderRepository cria uma nova instância de ReminderRepository
func NewReminderRepository(db *pgxpool.Pool) reminder.Repository {
	return &ReminderRepository{db: db}
}

// Create implementa reminder.Repository.Create. Reenvios geram novas linhas:
// o marcador é uma dica para a interface, nunca um bloqueio.
func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) error {
	rem.TenantID = stampTenant(ctx, rem.TenantID)

	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx,
		`INSERT INTO reminders (id, tenant_id, member_id, month, year, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rem.ID, rem.TenantID, rem.MemberID, rem.Month, rem.Year, rem.SentAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar marcador de cobrança: %w", err)
	}

	return nil
}

// ListByPeriod implementa reminder.Repository.ListByPeriod
func (r *ReminderRepository) ListByPeriod(ctx context.Context, month, year int) ([]*reminder.Reminder, error) {
	cond, args := tenantCondition(ctx, 3)
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT id, tenant_id, member_id, month, year, sent_at
		FROM reminders
		WHERE month = $1 AND year = $2 AND `+cond+`
		ORDER BY sent_at DESC`,
		append([]any{month, year}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar marcadores de cobrança: %w", err)
	}
	defer rows.Close()

	reminders := make([]*reminder.Reminder, 0)
	for rows.Next() {
		var rem reminder.Reminder
		if err := rows.Scan(&rem.ID, &rem.TenantID, &rem.MemberID,
			&rem.Month, &rem.Year, &rem.SentAt); err != nil {
			return nil, fmt.Errorf("erro ao ler marcador: %w", err)
		}
		reminders = append(reminders, &rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return reminders, nil
}
