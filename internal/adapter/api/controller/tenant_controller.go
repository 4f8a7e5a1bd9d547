package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	tenantdomain "github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// TenantController gerencia as requisições relacionadas a academias
type TenantController struct {
	tenantRepo tenantdomain.Repository
	logger     logger.Logger
}

// NewTenantController cria uma nova instância de TenantController
func NewTenantController(tenantRepo tenantdomain.Repository, logger logger.Logger) *TenantController {
	return &TenantController{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Create cria uma nova academia
// @Summary Criar academia
// @Description Cria uma nova academia na plataforma (apenas superadmin)
// @Tags tenants
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tenant body dto.TenantRequest true "Dados da academia"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tenants [post]
func (c *TenantController) Create(ctx *gin.Context) {
	var req dto.TenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	t, err := tenantdomain.NewTenant(req.Slug, req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar academia", err.Error()))
		return
	}

	if err := c.tenantRepo.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTenantDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "slug já está em uso", err.Error()))
			return
		}
		c.logger.Error("erro ao criar academia", "slug", req.Slug, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar academia", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// Get retorna uma academia pelo ID
// @Summary Buscar academia
// @Description Retorna os dados de uma academia pelo ID
// @Tags tenants
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da academia"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) Get(ctx *gin.Context) {
	t, err := c.tenantRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "academia não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar academia", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// List lista as academias com paginação
// @Summary Listar academias
// @Description Lista as academias da plataforma (apenas superadmin)
// @Tags tenants
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.TenantResponse
// @Router /tenants [get]
func (c *TenantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	tenants, err := c.tenantRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar academias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(tenants))
}

// Update atualiza os dados de uma academia
// @Summary Atualizar academia
// @Description Atualiza nome, identidade visual, sócios e tarifa horária
// @Tags tenants
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da academia"
// @Param tenant body dto.TenantUpdateRequest true "Dados da academia"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [put]
func (c *TenantController) Update(ctx *gin.Context) {
	var req dto.TenantUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	t, err := c.tenantRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "academia não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar academia", err.Error()))
		return
	}

	if err := t.Update(req.Name, dto.ToBranding(req.Branding), dto.ToPartners(req.Partners), req.InstructorHourlyRate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar academia", err.Error()))
		return
	}

	if err := c.tenantRepo.Update(ctx, t); err != nil {
		c.logger.Error("erro ao atualizar academia", "tenant_id", t.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar academia", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// Delete remove uma academia
// @Summary Remover academia
// @Description Remove uma academia da plataforma (apenas superadmin)
// @Tags tenants
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da academia"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [delete]
func (c *TenantController) Delete(ctx *gin.Context) {
	if err := c.tenantRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "academia não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover academia", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("academia removida com sucesso", nil))
}
