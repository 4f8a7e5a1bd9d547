package dto

import (
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
)

// PartnerRequest representa um sócio na requisição de tenant
type PartnerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Percentage float64 `json:"percentage" binding:"min=0,max=100"`
}

// BrandingRequest representa a identidade visual na requisição de tenant
type BrandingRequest struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url"`
	WelcomeText    string `json:"welcome_text"`
}

// TenantRequest representa a requisição de criação de academia
type TenantRequest struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// TenantUpdateRequest representa a requisição de atualização de academia
type TenantUpdateRequest struct {
	Name                 string           `json:"name" binding:"required"`
	Branding             BrandingRequest  `json:"branding"`
	Partners             []PartnerRequest `json:"partners"`
	InstructorHourlyRate float64          `json:"instructor_hourly_rate" binding:"min=0"`
}

// TenantResponse representa a resposta com dados da academia
type TenantResponse struct {
	ID                   string           `json:"id"`
	Slug                 string           `json:"slug"`
	Name                 string           `json:"name"`
	Branding             tenant.Branding  `json:"branding"`
	Partners             []tenant.Partner `json:"partners"`
	InstructorHourlyRate float64          `json:"instructor_hourly_rate"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ToTenantResponse converte a entidade em resposta
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:                   t.ID,
		Slug:                 t.Slug,
		Name:                 t.Name,
		Branding:             t.Branding,
		Partners:             t.Partners,
		InstructorHourlyRate: t.InstructorHourlyRate,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// ToTenantListResponse converte uma lista de academias em respostas
func ToTenantListResponse(tenants []*tenant.Tenant) []TenantResponse {
	resp := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		resp = append(resp, ToTenantResponse(t))
	}
	return resp
}

// ToPartners converte as requisições de sócio em entidades
func ToPartners(reqs []PartnerRequest) []tenant.Partner {
	partners := make([]tenant.Partner, 0, len(reqs))
	for _, p := range reqs {
		partners = append(partners, tenant.Partner{
			Name:       p.Name,
			Percentage: p.Percentage,
		})
	}
	return partners
}

// ToBranding converte a requisição de identidade visual em entidade
func ToBranding(req BrandingRequest) tenant.Branding {
	return tenant.Branding{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        req.LogoURL,
		WelcomeText:    req.WelcomeText,
	}
}
