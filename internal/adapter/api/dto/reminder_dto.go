package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/reminder"
	"github.com/hugohenrick/academia-backoffice/internal/service"
)

// ReminderRequest representa a requisição de envio de lembrete
type ReminderRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

// ReminderResponse representa um marcador de cobrança enviada
type ReminderResponse struct {
	ID       string    `json:"id"`
	MemberID string    `json:"member_id"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	SentAt   time.Time `json:"sent_at"`
}

// BulkReminderResponse representa o resumo do envio em lote
type BulkReminderResponse struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// ToReminderResponse converte a entidade em resposta
func ToReminderResponse(r *reminder.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:       r.ID,
		MemberID: r.MemberID,
		Month:    r.Month,
		Year:     r.Year,
		SentAt:   r.SentAt,
	}
}

// ToReminderListResponse converte uma lista de marcadores em respostas
func ToReminderListResponse(reminders []*reminder.Reminder) []ReminderResponse {
	resp := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		resp = append(resp, ToReminderResponse(r))
	}
	return resp
}

// ToBulkReminderResponse converte o resultado do serviço em resposta
func ToBulkReminderResponse(r *service.BulkReminderResult) BulkReminderResponse {
	return BulkReminderResponse{
		Success: r.Success,
		Failed:  r.Failed,
	}
}
