package dto

import (
	"github.com/hugohenrick/academia-backoffice/internal/service"
)

// PartnerShareResponse representa a parcela de um sócio no relatório
type PartnerShareResponse struct {
	Name           string  `json:"name"`
	Percentage     float64 `json:"percentage"`
	HoursWorked    float64 `json:"hours_worked"`
	Wage           float64 `json:"wage"`
	ExternallyPaid bool    `json:"externally_paid"`
	ProfitShare    float64 `json:"profit_share"`
	Total          float64 `json:"total"`
}

// ProfitSplitResponse representa o relatório de divisão de lucros
type ProfitSplitResponse struct {
	Month          int                    `json:"month"`
	Year           int                    `json:"year"`
	Income         float64                `json:"income"`
	Expenses       float64                `json:"expenses"`
	InstructorCost float64                `json:"instructor_cost"`
	Profit         float64                `json:"profit"`
	Shares         []PartnerShareResponse `json:"shares"`
}

// SummaryResponse representa o resumo financeiro mensal
type SummaryResponse struct {
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	IncomeByType      map[string]float64 `json:"income_by_type"`
	IncomeTotal       float64            `json:"income_total"`
	ExpenseTotal      float64            `json:"expense_total"`
	PendingDebtTotal  float64            `json:"pending_debt_total"`
	PendingDebtsCount int                `json:"pending_debts_count"`
}

// ToProfitSplitResponse converte o relatório do serviço em resposta
func ToProfitSplitResponse(r *service.ProfitSplitReport) ProfitSplitResponse {
	shares := make([]PartnerShareResponse, 0, len(r.Shares))
	for _, s := range r.Shares {
		shares = append(shares, PartnerShareResponse{
			Name:           s.Name,
			Percentage:     s.Percentage,
			HoursWorked:    s.HoursWorked,
			Wage:           s.Wage,
			ExternallyPaid: s.ExternallyPaid,
			ProfitShare:    s.ProfitShare,
			Total:          s.Total,
		})
	}

	return ProfitSplitResponse{
		Month:          r.Month,
		Year:           r.Year,
		Income:         r.Income,
		Expenses:       r.Expenses,
		InstructorCost: r.InstructorCost,
		Profit:         r.Profit,
		Shares:         shares,
	}
}
