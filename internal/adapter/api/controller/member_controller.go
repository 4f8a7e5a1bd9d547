package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	memberdomain "github.com/hugohenrick/academia-backoffice/internal/domain/member"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// MemberController gerencia as requisições relacionadas a sócios
type MemberController struct {
	memberRepo memberdomain.Repository
	logger     logger.Logger
}

// NewMemberController cria uma nova instância de MemberController
func NewMemberController(memberRepo memberdomain.Repository, logger logger.Logger) *MemberController {
	return &MemberController{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Create cria um novo sócio
// @Summary Criar sócio
// @Description Cadastra um novo sócio na academia
// @Tags members
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param member body dto.MemberRequest true "Dados do sócio"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /members [post]
func (c *MemberController) Create(ctx *gin.Context) {
	var req dto.MemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := memberdomain.NewMember(req.Document, req.Name, req.Phone, req.PlanType, req.PlanCost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar sócio", err.Error()))
		return
	}

	if err := c.memberRepo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMemberDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "documento já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar sócio", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar sócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(m))
}

// Get retorna um sócio pelo ID
// @Summary Buscar sócio
// @Description Retorna os dados de um sócio pelo ID
// @Tags members
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do sócio"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /members/{id} [get]
func (c *MemberController) Get(ctx *gin.Context) {
	m, err := c.memberRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(m))
}

// List lista os sócios com paginação
// @Summary Listar sócios
// @Description Lista os sócios da academia
// @Tags members
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.MemberListResponse
// @Router /members [get]
func (c *MemberController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	members, err := c.memberRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar sócios", err.Error()))
		return
	}

	total, err := c.memberRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar sócios", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(members, total, pagination.Page, pagination.PageSize))
}

// Search busca sócios pelo nome
// @Summary Buscar sócios por nome
// @Description Busca sócios pelo nome, com correspondência parcial
// @Tags members
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param name query string true "Nome ou parte do nome"
// @Success 200 {array} dto.MemberResponse
// @Router /members/search [get]
func (c *MemberController) Search(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro name é obrigatório", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	members, err := c.memberRepo.FindByName(ctx, name, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sócios", err.Error()))
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update atualiza os dados de um sócio
// @Summary Atualizar sócio
// @Description Atualiza os dados cadastrais de um sócio
// @Tags members
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do sócio"
// @Param member body dto.MemberUpdateRequest true "Dados do sócio"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /members/{id} [put]
func (c *MemberController) Update(ctx *gin.Context) {
	var req dto.MemberUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := c.memberRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sócio", err.Error()))
		return
	}

	if err := m.Update(req.Name, req.Phone, req.PlanType, req.PlanCost, req.Active, req.Exempt, req.FamilyHeadID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar sócio", err.Error()))
		return
	}

	if err := c.memberRepo.Update(ctx, m); err != nil {
		c.logger.Error("erro ao atualizar sócio", "member_id", m.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar sócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(m))
}

// Delete remove um sócio
// @Summary Remover sócio
// @Description Remove um sócio da academia
// @Tags members
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do sócio"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /members/{id} [delete]
func (c *MemberController) Delete(ctx *gin.Context) {
	if err := c.memberRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sócio não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover sócio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("sócio removido com sucesso", nil))
}
