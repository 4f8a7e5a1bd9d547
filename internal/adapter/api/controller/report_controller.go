package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	debtdomain "github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	expensedomain "github.com/hugohenrick/academia-backoffice/internal/domain/expense"
	paymentdomain "github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/service"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// ReportController gerencia os relatórios financeiros
type ReportController struct {
	profitService *service.ProfitService
	paymentRepo   paymentdomain.Repository
	expenseRepo   expensedomain.Repository
	debtRepo      debtdomain.Repository
	logger        logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(
	profitService *service.ProfitService,
	paymentRepo paymentdomain.Repository,
	expenseRepo expensedomain.Repository,
	debtRepo debtdomain.Repository,
	logger logger.Logger,
) *ReportController {
	return &ReportController{
		profitService: profitService,
		paymentRepo:   paymentRepo,
		expenseRepo:   expenseRepo,
		debtRepo:      debtRepo,
		logger:        logger,
	}
}

// ProfitSplit retorna a divisão de lucros da competência
// @Summary Divisão de lucros
// @Description Calcula a divisão de lucros entre os sócios da academia na competência
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mês (1-12), padrão mês atual"
// @Param year query int false "Ano, padrão ano atual"
// @Success 200 {object} dto.ProfitSplitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/profit-split [get]
func (c *ReportController) ProfitSplit(ctx *gin.Context) {
	month, year := periodFromQuery(ctx)

	report, err := c.profitService.Split(ctx, month, year)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoTenantScope):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "divisão de lucros exige o escopo de uma academia", ""))
		case errors.Is(err, service.ErrNoPartners):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "academia sem sócios cadastrados", ""))
		case errors.Is(err, repository.ErrSettingsNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "configuração de divisão de lucros ainda não cadastrada", ""))
		default:
			c.logger.Error("erro ao calcular divisão de lucros", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular divisão de lucros", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitSplitResponse(report))
}

// Summary retorna o resumo financeiro da competência
// @Summary Resumo financeiro
// @Description Retorna receitas por tipo, despesas e fiados pendentes da competência
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mês (1-12), padrão mês atual"
// @Param year query int false "Ano, padrão ano atual"
// @Success 200 {object} dto.SummaryResponse
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	month, year := periodFromQuery(ctx)

	sums, err := c.paymentRepo.SumByPeriod(ctx, month, year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao somar recebimentos", err.Error()))
		return
	}

	incomeByType := make(map[string]float64, len(sums))
	incomeTotal := 0.0
	for t, total := range sums {
		incomeByType[string(t)] = total
		incomeTotal += total
	}

	expenseTotal, err := c.expenseRepo.SumByPeriod(ctx, month, year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao somar despesas", err.Error()))
		return
	}

	pending, err := c.debtRepo.ListPending(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fiados pendentes", err.Error()))
		return
	}

	pendingTotal := 0.0
	for _, d := range pending {
		pendingTotal += d.Outstanding()
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		Month:             month,
		Year:              year,
		IncomeByType:      incomeByType,
		IncomeTotal:       incomeTotal,
		ExpenseTotal:      expenseTotal,
		PendingDebtTotal:  pendingTotal,
		PendingDebtsCount: len(pending),
	})
}
