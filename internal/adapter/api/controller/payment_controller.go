package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	memberdomain "github.com/hugohenrick/academia-backoffice/internal/domain/member"
	paymentdomain "github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// PaymentController gerencia as requisições relacionadas a recebimentos
type PaymentController struct {
	paymentRepo paymentdomain.Repository
	memberRepo  memberdomain.Repository
	logger      logger.Logger
}

// NewPaymentController cria uma nova instância de PaymentController
func NewPaymentController(paymentRepo paymentdomain.Repository, memberRepo memberdomain.Repository, logger logger.Logger) *PaymentController {
	return &PaymentController{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

// Create registra um novo recebimento
// @Summary Registrar recebimento
// @Description Registra um recebimento no livro-caixa. Valor zero com comentário marca perdão de dívida.
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payment body dto.PaymentRequest true "Dados do recebimento"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments [post]
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	memberName := req.MemberName
	m, err := c.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sócio", err.Error()))
		return
	}
	if memberName == "" {
		memberName = m.Name
	}

	p, err := paymentdomain.NewPayment(req.MemberID, memberName, req.Amount, paymentdomain.Type(req.Type), req.Month, req.Year, req.Comment)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar recebimento", err.Error()))
		return
	}

	if err := c.paymentRepo.Create(ctx, p); err != nil {
		c.logger.Error("erro ao registrar recebimento", "member_id", req.MemberID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar recebimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(p))
}

// ListByPeriod lista os recebimentos de uma competência
// @Summary Listar recebimentos
// @Description Lista os recebimentos de uma competência (mês/ano)
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mês (1-12), padrão mês atual"
// @Param year query int false "Ano, padrão ano atual"
// @Success 200 {array} dto.PaymentResponse
// @Router /payments [get]
func (c *PaymentController) ListByPeriod(ctx *gin.Context) {
	month, year := periodFromQuery(ctx)

	payments, err := c.paymentRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar recebimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments))
}

// ListByMember lista os recebimentos de um sócio
// @Summary Listar recebimentos de um sócio
// @Description Lista o histórico de recebimentos de um sócio
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param memberId path string true "ID do sócio"
// @Success 200 {array} dto.PaymentResponse
// @Router /payments/member/{memberId} [get]
func (c *PaymentController) ListByMember(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	payments, err := c.paymentRepo.ListByMember(ctx, ctx.Param("memberId"), pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar recebimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments))
}

// Delete remove um recebimento
// @Summary Remover recebimento
// @Description Remove um recebimento lançado por engano
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do recebimento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id} [delete]
func (c *PaymentController) Delete(ctx *gin.Context) {
	if err := c.paymentRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "recebimento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover recebimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("recebimento removido com sucesso", nil))
}

// periodFromQuery extrai a competência da query string, usando a competência
// corrente como padrão
func periodFromQuery(ctx *gin.Context) (int, int) {
	now := time.Now()
	month, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 {
		year = now.Year()
	}
	return month, year
}
