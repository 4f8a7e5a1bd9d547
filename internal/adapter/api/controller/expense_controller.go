package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	expensedomain "github.com/hugohenrick/academia-backoffice/internal/domain/expense"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	expenseRepo expensedomain.Repository
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create registra uma nova despesa
// @Summary Registrar despesa
// @Description Registra uma despesa da academia na competência informada
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := expensedomain.NewExpense(req.Description, req.Amount, req.Category, req.Month, req.Year)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar despesa", err.Error()))
		return
	}

	if err := c.expenseRepo.Create(ctx, e); err != nil {
		c.logger.Error("erro ao registrar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// ListByPeriod lista as despesas de uma competência
// @Summary Listar despesas
// @Description Lista as despesas de uma competência (mês/ano)
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mês (1-12), padrão mês atual"
// @Param year query int false "Ano, padrão ano atual"
// @Success 200 {array} dto.ExpenseResponse
// @Router /expenses [get]
func (c *ExpenseController) ListByPeriod(ctx *gin.Context) {
	month, year := periodFromQuery(ctx)

	expenses, err := c.expenseRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Update atualiza uma despesa
// @Summary Atualizar despesa
// @Description Atualiza os dados de uma despesa existente
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := c.expenseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	if err := e.Update(req.Description, req.Amount, req.Category, req.Month, req.Year); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar despesa", err.Error()))
		return
	}

	if err := c.expenseRepo.Update(ctx, e); err != nil {
		c.logger.Error("erro ao atualizar despesa", "expense_id", e.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete remove uma despesa
// @Summary Remover despesa
// @Description Remove uma despesa da academia
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.expenseRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa removida com sucesso", nil))
}
