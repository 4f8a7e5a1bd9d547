package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/settings"
)

// SettingsRequest representa a requisição de configuração da divisão de lucros
type SettingsRequest struct {
	BaseHours                 float64        `json:"base_hours" binding:"required,gt=0"`
	DaysOff                   map[string]int `json:"days_off"`
	ExternallyPaidInstructors []string       `json:"externally_paid_instructors"`
}

// SettingsResponse representa a resposta com a configuração atual
type SettingsResponse struct {
	BaseHours                 float64        `json:"base_hours"`
	DaysOff                   map[string]int `json:"days_off"`
	ExternallyPaidInstructors []string       `json:"externally_paid_instructors"`
	UpdatedAt                 time.Time      `json:"updated_at"`
}

// ToSettingsResponse converte a entidade em resposta
func ToSettingsResponse(s *settings.Settings) SettingsResponse {
	daysOff := s.DaysOff
	if daysOff == nil {
		daysOff = map[string]int{}
	}

	return SettingsResponse{
		BaseHours:                 s.BaseHours,
		DaysOff:                   daysOff,
		ExternallyPaidInstructors: s.ExternallyPaidInstructors,
		UpdatedAt:                 s.UpdatedAt,
	}
}
