package reminder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMember  = errors.New("sócio não informado")
	ErrInvalidMonth = errors.New("mês inválido")
)

// Reminder é o marcador local de "cobrança enviada" para um sócio em uma
// competência. Serve apenas como dica de idempotência para a interface;
// o reenvio é sempre permitido.
type Reminder struct {
	ID       string    `json:"id"`
	TenantID *string   `json:"tenant_id"`
	MemberID string    `json:"member_id"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	SentAt   time.Time `json:"sent_at"`
}

// NewReminder cria um novo marcador de cobrança
func NewReminder(memberID string, month, year int) (*Reminder, error) {
	if memberID == "" {
		return nil, ErrEmptyMember
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	return &Reminder{
		ID:       uuid.New().String(),
		MemberID: memberID,
		Month:    month,
		Year:     year,
		SentAt:   time.Now(),
	}, nil
}
