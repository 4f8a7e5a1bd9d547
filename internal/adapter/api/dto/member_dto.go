package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/member"
)

// MemberRequest representa a requisição de criação de sócio
type MemberRequest struct {
	Document string  `json:"document" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone"`
	PlanType string  `json:"plan_type"`
	PlanCost float64 `json:"plan_cost" binding:"min=0"`
}

// MemberUpdateRequest representa a requisição de atualização de sócio
type MemberUpdateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone"`
	PlanType     string  `json:"plan_type"`
	PlanCost     float64 `json:"plan_cost" binding:"min=0"`
	Active       bool    `json:"active"`
	Exempt       bool    `json:"exempt"`
	FamilyHeadID *string `json:"family_head_id"`
}

// MemberResponse representa a resposta com dados de sócio
type MemberResponse struct {
	ID           string    `json:"id"`
	Document     string    `json:"document"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PlanType     string    `json:"plan_type"`
	PlanCost     float64   `json:"plan_cost"`
	Active       bool      `json:"active"`
	Exempt       bool      `json:"exempt"`
	FamilyHeadID *string   `json:"family_head_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MemberListResponse representa a resposta paginada de sócios
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ToMemberResponse converte a entidade em resposta
func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Document:     m.Document,
		Name:         m.Name,
		Phone:        m.Phone,
		PlanType:     m.PlanType,
		PlanCost:     m.PlanCost,
		Active:       m.Active,
		Exempt:       m.Exempt,
		FamilyHeadID: m.FamilyHeadID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMemberListResponse converte a lista de sócios em resposta paginada
func ToMemberListResponse(members []*member.Member, total, page, pageSize int) MemberListResponse {
	resp := MemberListResponse{
		Members:  make([]MemberResponse, 0, len(members)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, m := range members {
		resp.Members = append(resp.Members, ToMemberResponse(m))
	}
	return resp
}
