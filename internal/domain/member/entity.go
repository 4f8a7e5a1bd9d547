package member

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyDocument = errors.New("documento não pode ser vazio")
)

// Member representa um sócio da academia
type Member struct {
	ID           string    `json:"id"`
	TenantID     *string   `json:"tenant_id"` // Nulo denota dados legados, sem academia associada
	Document     string    `json:"document"`  // Documento de identidade, único por tenant
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PlanType     string    `json:"plan_type"` // Tipo de plano contratado
	PlanCost     float64   `json:"plan_cost"` // Valor do plano no momento do cadastro
	Active       bool      `json:"active"`
	Exempt       bool      `json:"exempt"`         // Isento de mensalidade
	FamilyHeadID *string   `json:"family_head_id"` // Titular do plano família, quando houver
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewMember cria um novo sócio
func NewMember(document, name, phone, planType string, planCost float64) (*Member, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if document == "" {
		return nil, ErrEmptyDocument
	}

	now := time.Now()
	return &Member{
		ID:        uuid.New().String(),
		Document:  document,
		Name:      name,
		Phone:     phone,
		PlanType:  planType,
		PlanCost:  planCost,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do sócio
func (m *Member) Update(name, phone, planType string, planCost float64, active, exempt bool, familyHeadID *string) error {
	if name == "" {
		return ErrEmptyName
	}

	m.Name = name
	m.Phone = phone
	m.PlanType = planType
	m.PlanCost = planCost
	m.Active = active
	m.Exempt = exempt
	m.FamilyHeadID = familyHeadID
	m.UpdatedAt = time.Now()
	return nil
}

// IsFamilyDependent verifica se o sócio está vinculado a um titular de plano família
func (m *Member) IsFamilyDependent() bool {
	return m.FamilyHeadID != nil && *m.FamilyHeadID != ""
}
