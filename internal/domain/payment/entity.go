package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMember   = errors.New("sócio não informado")
	ErrInvalidAmount = errors.New("valor não pode ser negativo")
	ErrInvalidMonth  = errors.New("mês inválido")
)

// Type representa a natureza do recebimento
type Type string

const (
	TypeMembership Type = "mensalidade" // Mensalidade do plano
	TypeProduct    Type = "produto"     // Venda de produto ou liquidação de fiado
)

// Payment é uma linha imutável do livro-caixa: dinheiro recebido.
// Valor zero com comentário marca perdão de dívida ou anotação administrativa.
type Payment struct {
	ID         string    `json:"id"`
	TenantID   *string   `json:"tenant_id"`
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Amount     float64   `json:"amount"`
	Type       Type      `json:"type"`
	Month      int       `json:"month"` // Competência: mês (1-12)
	Year       int       `json:"year"`  // Competência: ano
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPayment cria um novo recebimento na competência informada
func NewPayment(memberID, memberName string, amount float64, paymentType Type, month, year int, comment string) (*Payment, error) {
	if memberID == "" {
		return nil, ErrEmptyMember
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	return &Payment{
		ID:         uuid.New().String(),
		MemberID:   memberID,
		MemberName: memberName,
		Amount:     amount,
		Type:       paymentType,
		Month:      month,
		Year:       year,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}, nil
}

// IsForgiveness verifica se a linha é um marcador de perdão/anotação
func (p *Payment) IsForgiveness() bool {
	return p.Amount == 0 && p.Comment != ""
}
