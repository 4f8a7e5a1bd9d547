package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/academia-backoffice/internal/domain/expense"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/settings"
	"github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
	pkgtenant "github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

// Erros do cálculo de divisão de lucros
var (
	ErrNoTenantScope = errors.New("divisão de lucros exige o escopo de uma academia")
	ErrNoPartners    = errors.New("academia sem sócios cadastrados")
)

// PartnerShare é a parcela de um sócio no resultado do mês
type PartnerShare struct {
	Name           string  `json:"name"`
	Percentage     float64 `json:"percentage"`
	HoursWorked    float64 `json:"hours_worked"`
	Wage           float64 `json:"wage"`            // Valor das horas de instrução
	ExternallyPaid bool    `json:"externally_paid"` // Horas pagas por fora, não entram no rateio
	ProfitShare    float64 `json:"profit_share"`
	Total          float64 `json:"total"`
}

// ProfitSplitReport é o resultado da divisão de lucros de uma competência
type ProfitSplitReport struct {
	Month          int            `json:"month"`
	Year           int            `json:"year"`
	Income         float64        `json:"income"`
	Expenses       float64        `json:"expenses"`
	InstructorCost float64        `json:"instructor_cost"` // Horas pagas pelo caixa da academia
	Profit         float64        `json:"profit"`
	Shares         []PartnerShare `json:"shares"`
}

// ProfitService calcula a divisão de lucros entre os sócios da academia
type ProfitService struct {
	tenants  tenant.Repository
	settings settings.Repository
	payments payment.Repository
	expenses expense.Repository
}

// NewProfitService cria uma nova instância de ProfitService
func NewProfitService(
	tenants tenant.Repository,
	settings settings.Repository,
	payments payment.Repository,
	expenses expense.Repository,
) *ProfitService {
	return &ProfitService{
		tenants:  tenants,
		settings: settings,
		payments: payments,
		expenses: expenses,
	}
}

// Split calcula a divisão de lucros da competência informada.
//
// Cada sócio tem direito às horas de instrução trabalhadas
// (carga base menos folgas, na proporção de um mês de 30 dias) vezes a
// tarifa horária da academia. Horas de sócios "pagos por fora" não saem do
// caixa. O que sobra de receita menos despesas menos horas pagas pelo caixa
// é rateado pelos percentuais de participação.
func (s *ProfitService) Split(ctx context.Context, month, year int) (*ProfitSplitReport, error) {
	tenantID, ok := pkgtenant.TenantID(ctx)
	if !ok {
		return nil, ErrNoTenantScope
	}

	t, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if len(t.Partners) == 0 {
		return nil, ErrNoPartners
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := s.payments.SumByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	income := 0.0
	for _, total := range sums {
		income += total
	}

	expenseTotal, err := s.expenses.SumByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	report := &ProfitSplitReport{
		Month:    month,
		Year:     year,
		Income:   income,
		Expenses: expenseTotal,
		Shares:   make([]PartnerShare, 0, len(t.Partners)),
	}

	for _, partner := range t.Partners {
		daysOff := cfg.DaysOff[partner.Name]
		hours := cfg.BaseHours - float64(daysOff)*(cfg.BaseHours/30.0)
		if hours < 0 {
			hours = 0
		}

		share := PartnerShare{
			Name:           partner.Name,
			Percentage:     partner.Percentage,
			HoursWorked:    hours,
			Wage:           hours * t.InstructorHourlyRate,
			ExternallyPaid: cfg.IsExternallyPaid(partner.Name),
		}

		if !share.ExternallyPaid {
			report.InstructorCost += share.Wage
		}

		report.Shares = append(report.Shares, share)
	}

	report.Profit = report.Income - report.Expenses - report.InstructorCost

	for i := range report.Shares {
		share := &report.Shares[i]
		share.ProfitShare = report.Profit * share.Percentage / 100.0

		share.Total = share.ProfitShare
		if !share.ExternallyPaid {
			share.Total += share.Wage
		}
	}

	return report, nil
}
