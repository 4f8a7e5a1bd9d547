package settings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidBaseHours ocorre quando a carga horária base não é positiva
var ErrInvalidBaseHours = errors.New("carga horária base deve ser maior que zero")

// Settings é a configuração de divisão de lucros da academia.
// Uma única linha por tenant.
type Settings struct {
	ID        string         `json:"id"`
	TenantID  *string        `json:"tenant_id"`
	BaseHours float64        `json:"base_hours"` // Carga horária mensal de referência por sócio
	DaysOff   map[string]int `json:"days_off"`   // Dias de folga no mês, por nome de sócio
	// Sócios instrutores cujas horas são pagas por fora e não entram no rateio
	ExternallyPaidInstructors []string  `json:"externally_paid_instructors"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// NewSettings cria a configuração padrão de divisão de lucros
func NewSettings(baseHours float64) (*Settings, error) {
	if baseHours <= 0 {
		return nil, ErrInvalidBaseHours
	}

	return &Settings{
		ID:        uuid.New().String(),
		BaseHours: baseHours,
		DaysOff:   map[string]int{},
		UpdatedAt: time.Now(),
	}, nil
}

// Update atualiza a configuração
func (s *Settings) Update(baseHours float64, daysOff map[string]int, externallyPaid []string) error {
	if baseHours <= 0 {
		return ErrInvalidBaseHours
	}

	s.BaseHours = baseHours
	s.DaysOff = daysOff
	s.ExternallyPaidInstructors = externallyPaid
	s.UpdatedAt = time.Now()
	return nil
}

// IsExternallyPaid verifica se as horas do sócio são pagas por fora
func (s *Settings) IsExternallyPaid(partnerName string) bool {
	for _, name := range s.ExternallyPaidInstructors {
		if name == partnerName {
			return true
		}
	}
	return false
}
