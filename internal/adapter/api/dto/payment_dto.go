package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
)

// PaymentRequest representa a requisição de registro de recebimento
type PaymentRequest struct {
	MemberID   string  `json:"member_id" binding:"required"`
	MemberName string  `json:"member_name"`
	Amount     float64 `json:"amount" binding:"min=0"`
	Type       string  `json:"type" binding:"required,oneof=mensalidade produto"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=2000"`
	Comment    string  `json:"comment"`
}

// PaymentResponse representa a resposta com dados de recebimento
type PaymentResponse struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	MemberName  string    `json:"member_name"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Comment     string    `json:"comment,omitempty"`
	Forgiveness bool      `json:"forgiveness"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToPaymentResponse converte a entidade em resposta
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		MemberID:    p.MemberID,
		MemberName:  p.MemberName,
		Amount:      p.Amount,
		Type:        string(p.Type),
		Month:       p.Month,
		Year:        p.Year,
		Comment:     p.Comment,
		Forgiveness: p.IsForgiveness(),
		CreatedAt:   p.CreatedAt,
	}
}

// ToPaymentListResponse converte uma lista de recebimentos em respostas
func ToPaymentListResponse(payments []*payment.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, ToPaymentResponse(p))
	}
	return resp
}
