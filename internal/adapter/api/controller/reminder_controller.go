package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	"github.com/hugohenrick/academia-backoffice/internal/service"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// ReminderController gerencia o envio de lembretes de mensalidade
type ReminderController struct {
	reminderService *service.ReminderService
	logger          logger.Logger
}

// NewReminderController cria uma nova instância de ReminderController
func NewReminderController(reminderService *service.ReminderService, logger logger.Logger) *ReminderController {
	return &ReminderController{
		reminderService: reminderService,
		logger:          logger,
	}
}

// Send envia um lembrete para um sócio
// @Summary Enviar lembrete
// @Description Envia um lembrete de mensalidade por WhatsApp para um sócio
// @Tags reminders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param memberId path string true "ID do sócio"
// @Param reminder body dto.ReminderRequest true "Competência"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /reminders/{memberId} [post]
func (c *ReminderController) Send(ctx *gin.Context) {
	var req dto.ReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	r, err := c.reminderService.SendToMember(ctx, ctx.Param("memberId"), req.Month, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
		case errors.Is(err, service.ErrNotifierDisabled):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "envio de lembretes desabilitado", "webhook de WhatsApp não configurado"))
		case errors.Is(err, service.ErrMemberHasNoPhone):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "sócio não possui telefone cadastrado", ""))
		default:
			c.logger.Error("erro ao enviar lembrete", "member_id", ctx.Param("memberId"), "error", err)
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "não foi possível enviar o lembrete", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(r))
}

// SendBulk envia lembretes para todos os sócios inadimplentes
// @Summary Enviar lembretes em lote
// @Description Envia lembretes para todos os sócios ativos sem mensalidade na competência. Falhas individuais não interrompem o lote.
// @Tags reminders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reminder body dto.ReminderRequest true "Competência"
// @Success 200 {object} dto.BulkReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /reminders/bulk [post]
func (c *ReminderController) SendBulk(ctx *gin.Context) {
	var req dto.ReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.reminderService.SendBulk(ctx, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, service.ErrNotifierDisabled) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "envio de lembretes desabilitado", "webhook de WhatsApp não configurado"))
			return
		}
		c.logger.Error("erro no envio em lote de lembretes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao enviar lembretes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBulkReminderResponse(result))
}

// List lista os marcadores de cobrança de uma competência
// @Summary Listar lembretes enviados
// @Description Lista os marcadores de cobrança enviada de uma competência
// @Tags reminders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mês (1-12), padrão mês atual"
// @Param year query int false "Ano, padrão ano atual"
// @Success 200 {array} dto.ReminderResponse
// @Router /reminders [get]
func (c *ReminderController) List(ctx *gin.Context) {
	month, year := periodFromQuery(ctx)

	reminders, err := c.reminderService.ListMarkers(ctx, month, year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lembretes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderListResponse(reminders))
}
