package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	"github.com/hugohenrick/academia-backoffice/internal/service"
)

// DebtItemRequest representa uma linha da requisição de fiado
type DebtItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// DebtRequest representa a requisição de criação de fiado
type DebtRequest struct {
	MemberID string            `json:"member_id" binding:"required"`
	Items    []DebtItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PartialPaymentRequest representa a requisição de pagamento parcial de fiados
type PartialPaymentRequest struct {
	MemberID string  `json:"member_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
}

// DebtItemResponse representa uma linha do fiado na resposta
type DebtItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// DebtResponse representa a resposta com dados de fiado
type DebtResponse struct {
	ID          string             `json:"id"`
	MemberID    string             `json:"member_id"`
	MemberName  string             `json:"member_name"`
	Items       []DebtItemResponse `json:"items"`
	TotalAmount float64            `json:"total_amount"`
	PaidAmount  float64            `json:"paid_amount"`
	Outstanding float64            `json:"outstanding"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	PaidAt      *time.Time         `json:"paid_at,omitempty"`
}

// SettlementResponse representa o resultado de um pagamento parcial
type SettlementResponse struct {
	AmountApplied float64 `json:"amount_applied"`
	Leftover      float64 `json:"leftover"` // Troco: valor não aplicado, devolvido ao sócio
	DebtsSettled  int     `json:"debts_settled"`
}

// ToDebtItemInputs converte as linhas da requisição para o serviço
func ToDebtItemInputs(items []DebtItemRequest) []service.DebtItemInput {
	inputs := make([]service.DebtItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, service.DebtItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return inputs
}

// ToDebtResponse converte a entidade em resposta
func ToDebtResponse(d *debt.Debt) DebtResponse {
	items := make([]DebtItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, DebtItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return DebtResponse{
		ID:          d.ID,
		MemberID:    d.MemberID,
		MemberName:  d.MemberName,
		Items:       items,
		TotalAmount: d.TotalAmount,
		PaidAmount:  d.PaidAmount,
		Outstanding: d.Outstanding(),
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		PaidAt:      d.PaidAt,
	}
}

// ToDebtListResponse converte uma lista de fiados em respostas
func ToDebtListResponse(debts []*debt.Debt) []DebtResponse {
	resp := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		resp = append(resp, ToDebtResponse(d))
	}
	return resp
}

// ToSettlementResponse converte o resultado do serviço em resposta
func ToSettlementResponse(r *service.SettlementResult) SettlementResponse {
	return SettlementResponse{
		AmountApplied: r.AmountApplied,
		Leftover:      r.Leftover,
		DebtsSettled:  r.DebtsSettled,
	}
}
