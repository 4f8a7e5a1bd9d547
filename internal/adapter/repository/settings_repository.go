package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/academia-backoffice/internal/domain/settings"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSettingsNotFound ocorre quando o escopo atual ainda não tem configuração
var ErrSettingsNotFound = errors.New("configuração não encontrada")

// SettingsRepository implementa a interface settings.Repository
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &SettingsRepository{db: db}
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	cond, args := tenantCondition(ctx, 1)
	q := database.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx,
		`SELECT id, tenant_id, base_hours, days_off,
			externally_paid_instructors, updated_at
		FROM settings WHERE `+cond, args...)

	var s settings.Settings
	var daysOffJSON, externallyPaidJSON []byte

	err := row.Scan(&s.ID, &s.TenantID, &s.BaseHours, &daysOffJSON,
		&externallyPaidJSON, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	if err := json.Unmarshal(daysOffJSON, &s.DaysOff); err != nil {
		return nil, fmt.Errorf("erro ao converter dias de folga: %w", err)
	}

	if err := json.Unmarshal(externallyPaidJSON, &s.ExternallyPaidInstructors); err != nil {
		return nil, fmt.Errorf("erro ao converter instrutores pagos por fora: %w", err)
	}

	return &s, nil
}

// Save implementa settings.Repository.Save: uma única linha por escopo
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	daysOff, err := json.Marshal(s.DaysOff)
	if err != nil {
		return fmt.Errorf("erro ao converter dias de folga para JSON: %w", err)
	}

	externallyPaid, err := json.Marshal(s.ExternallyPaidInstructors)
	if err != nil {
		return fmt.Errorf("erro ao converter instrutores para JSON: %w", err)
	}

	s.TenantID = stampTenant(ctx, s.TenantID)

	// Substitui a configuração anterior do escopo, quando existir
	cond, args := tenantCondition(ctx, 1)
	q := database.QuerierFrom(ctx, r.db)
	if _, err := q.Exec(ctx, "DELETE FROM settings WHERE "+cond, args...); err != nil {
		return fmt.Errorf("erro ao substituir configuração: %w", err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO settings (
			id, tenant_id, base_hours, days_off,
			externally_paid_instructors, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.TenantID, s.BaseHours, daysOff, externallyPaid, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar configuração: %w", err)
	}

	return nil
}
