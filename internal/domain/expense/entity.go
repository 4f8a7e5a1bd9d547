package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrInvalidMonth     = errors.New("mês inválido")
)

// Expense representa uma despesa da academia
type Expense struct {
	ID          string    `json:"id"`
	TenantID    *string   `json:"tenant_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExpense cria uma nova despesa
func NewExpense(description string, amount float64, category string, month, year int) (*Expense, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	now := time.Now()
	return &Expense{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da despesa
func (e *Expense) Update(description string, amount float64, category string, month, year int) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}

	e.Description = description
	e.Amount = amount
	e.Category = category
	e.Month = month
	e.Year = year
	e.UpdatedAt = time.Now()
	return nil
}
