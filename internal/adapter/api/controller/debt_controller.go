package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	debtdomain "github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	memberdomain "github.com/hugohenrick/academia-backoffice/internal/domain/member"
	"github.com/hugohenrick/academia-backoffice/internal/service"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// DebtController gerencia as requisições relacionadas a fiados
type DebtController struct {
	debtService *service.DebtService
	debtRepo    debtdomain.Repository
	memberRepo  memberdomain.Repository
	logger      logger.Logger
}

// NewDebtController cria uma nova instância de DebtController
func NewDebtController(
	debtService *service.DebtService,
	debtRepo debtdomain.Repository,
	memberRepo memberdomain.Repository,
	logger logger.Logger,
) *DebtController {
	return &DebtController{
		debtService: debtService,
		debtRepo:    debtRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

// Create cria um novo fiado
// @Summary Criar fiado
// @Description Registra produtos levados por um sócio, abatendo o estoque
// @Tags debts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param debt body dto.DebtRequest true "Dados do fiado"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /debts [post]
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.DebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := c.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sócio", err.Error()))
		return
	}

	d, err := c.debtService.CreateDebt(ctx, m.ID, m.Name, dto.ToDebtItemInputs(req.Items))
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, stockErr.Error(), ""))
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		default:
			c.logger.Error("erro ao criar fiado", "member_id", m.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar fiado", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(d))
}

// ListPending lista os fiados pendentes
// @Summary Listar fiados pendentes
// @Description Lista todos os fiados pendentes da academia
// @Tags debts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.DebtResponse
// @Router /debts [get]
func (c *DebtController) ListPending(ctx *gin.Context) {
	debts, err := c.debtRepo.ListPending(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fiados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(debts))
}

// ListByMember lista os fiados de um sócio
// @Summary Listar fiados de um sócio
// @Description Lista todos os fiados de um sócio, pendentes e quitados
// @Tags debts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param memberId path string true "ID do sócio"
// @Success 200 {array} dto.DebtResponse
// @Router /debts/member/{memberId} [get]
func (c *DebtController) ListByMember(ctx *gin.Context) {
	debts, err := c.debtRepo.ListByMember(ctx, ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fiados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(debts))
}

// Pay quita um fiado integralmente
// @Summary Quitar fiado
// @Description Quita um fiado integralmente e registra o recebimento
// @Tags debts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fiado"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /debts/{id}/pay [put]
func (c *DebtController) Pay(ctx *gin.Context) {
	d, err := c.debtService.SettleFull(ctx, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDebtNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fiado não encontrado", ""))
		case errors.Is(err, service.ErrDebtAlreadyPaid):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fiado já está quitado", ""))
		default:
			c.logger.Error("erro ao quitar fiado", "debt_id", ctx.Param("id"), "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao quitar fiado", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(d))
}

// PayPartial abate um valor dos fiados pendentes de um sócio
// @Summary Pagamento parcial de fiados
// @Description Abate o valor informado dos fiados pendentes do sócio, do mais antigo para o mais novo
// @Tags debts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payment body dto.PartialPaymentRequest true "Sócio e valor"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /debts/pay-partial [post]
func (c *DebtController) PayPartial(ctx *gin.Context) {
	var req dto.PartialPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.debtService.SettlePartial(ctx, req.MemberID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor do pagamento deve ser maior que zero", ""))
		case errors.Is(err, service.ErrNoPendingDebts):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nenhum fiado pendente encontrado para o sócio", ""))
		default:
			c.logger.Error("erro no pagamento parcial", "member_id", req.MemberID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao processar pagamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}
