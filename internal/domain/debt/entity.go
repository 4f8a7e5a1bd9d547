package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMember = errors.New("sócio não informado")
	ErrNoItems     = errors.New("fiado sem itens")
)

// AmountTolerance é a tolerância de ponto flutuante usada para considerar
// um fiado quitado
const AmountTolerance = 0.01

// Status representa o estado do fiado
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Item é uma linha do fiado: o preço unitário é um snapshot do momento da venda
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Debt representa um fiado: o saldo devedor de um sócio por produtos levados
type Debt struct {
	ID          string     `json:"id"`
	TenantID    *string    `json:"tenant_id"`
	MemberID    string     `json:"member_id"`
	MemberName  string     `json:"member_name"` // Snapshot do nome no momento da venda
	Items       []Item     `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	PaidAmount  float64    `json:"paid_amount"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at"`
}

// NewDebt cria um novo fiado pendente
func NewDebt(memberID, memberName string, items []Item, totalAmount float64) (*Debt, error) {
	if memberID == "" {
		return nil, ErrEmptyMember
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return &Debt{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		MemberName:  memberName,
		Items:       items,
		TotalAmount: totalAmount,
		PaidAmount:  0,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}, nil
}

// Outstanding retorna o saldo devedor ainda não quitado
func (d *Debt) Outstanding() float64 {
	return d.TotalAmount - d.PaidAmount
}

// IsPaid verifica se o fiado está quitado
func (d *Debt) IsPaid() bool {
	return d.Status == StatusPaid
}

// Apply abate até amount do saldo devedor e retorna o valor efetivamente
// aplicado. PaidAmount nunca ultrapassa TotalAmount; quando o saldo restante
// fica dentro da tolerância o fiado transita para quitado, estado terminal.
func (d *Debt) Apply(amount float64) float64 {
	outstanding := d.Outstanding()
	if outstanding <= 0 {
		// Inconsistência pré-existente: o registro já estava coberto
		d.MarkPaid()
		return 0
	}

	applied := amount
	if applied > outstanding {
		applied = outstanding
	}

	d.PaidAmount += applied
	if d.TotalAmount-d.PaidAmount <= AmountTolerance {
		d.MarkPaid()
	}

	return applied
}

// MarkPaid quita o fiado integralmente e registra o momento da quitação
func (d *Debt) MarkPaid() {
	d.PaidAmount = d.TotalAmount
	d.Status = StatusPaid
	now := time.Now()
	d.PaidAt = &now
}
