package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	settingsdomain "github.com/hugohenrick/academia-backoffice/internal/domain/settings"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// SettingsController gerencia a configuração de divisão de lucros
type SettingsController struct {
	settingsRepo settingsdomain.Repository
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settingsdomain.Repository, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retorna a configuração atual
// @Summary Buscar configuração
// @Description Retorna a configuração de divisão de lucros da academia
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	s, err := c.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "configuração ainda não cadastrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Save grava a configuração
// @Summary Gravar configuração
// @Description Grava a configuração de divisão de lucros da academia
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settings body dto.SettingsRequest true "Configuração"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Save(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := settingsdomain.NewSettings(req.BaseHours)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "configuração inválida", err.Error()))
		return
	}

	if err := s.Update(req.BaseHours, req.DaysOff, req.ExternallyPaidInstructors); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "configuração inválida", err.Error()))
		return
	}

	if err := c.settingsRepo.Save(ctx, s); err != nil {
		c.logger.Error("erro ao gravar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}
