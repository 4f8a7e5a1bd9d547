package tenant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrEmptySlug          = errors.New("slug não pode ser vazio")
	ErrInvalidSlug        = errors.New("slug inválido: use apenas letras, números e hífens")
	ErrInvalidPercentages = errors.New("percentuais dos sócios devem somar 100")
)

// Partner representa um sócio da academia e sua participação nos lucros
type Partner struct {
	Name       string  `json:"name"`       // Nome do sócio
	Percentage float64 `json:"percentage"` // Percentual de participação (0-100)
}

// Branding agrupa a identidade visual do tenant; opaca para o backend
type Branding struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	WelcomeText    string `json:"welcome_text,omitempty"`
}

// Tenant representa uma academia no sistema multi-tenant
type Tenant struct {
	ID                   string    `json:"id"`
	Slug                 string    `json:"slug"` // Identificador do subdomínio, único e minúsculo
	Name                 string    `json:"name"`
	Branding             Branding  `json:"branding"`
	Partners             []Partner `json:"partners"`
	InstructorHourlyRate float64   `json:"instructor_hourly_rate"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewTenant cria um novo tenant. O slug é normalizado para minúsculas.
func NewTenant(slug, name string) (*Tenant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrEmptySlug
	}
	if !validSlug(slug) {
		return nil, ErrInvalidSlug
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Tenant{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do tenant
func (t *Tenant) Update(name string, branding Branding, partners []Partner, instructorRate float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(partners) > 0 {
		total := 0.0
		for _, p := range partners {
			total += p.Percentage
		}
		if total < 99.99 || total > 100.01 {
			return ErrInvalidPercentages
		}
	}

	t.Name = name
	t.Branding = branding
	t.Partners = partners
	t.InstructorHourlyRate = instructorRate
	t.UpdatedAt = time.Now()
	return nil
}

// validSlug aceita o formato permitido em subdomínios
func validSlug(slug string) bool {
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
