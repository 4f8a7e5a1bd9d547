package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/product"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// Erros do motor de liquidação
var (
	ErrInvalidAmount   = errors.New("valor do pagamento deve ser maior que zero")
	ErrDebtAlreadyPaid = errors.New("fiado já está quitado")
	ErrNoPendingDebts  = errors.New("nenhum fiado pendente encontrado")
)

// InsufficientStockError nomeia o produto e o estoque atual, para que a
// interface mostre uma mensagem acionável
type InsufficientStockError struct {
	ProductName string
	Stock       int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s (estoque atual: %d, pedido: %d)",
		e.ProductName, e.Stock, e.Requested)
}

// DebtItemInput é uma linha do fiado na criação
type DebtItemInput struct {
	ProductID string
	Quantity  int
}

// SettlementResult é o resultado de uma liquidação parcial
type SettlementResult struct {
	AmountApplied float64 `json:"amount_applied"` // Valor efetivamente abatido dos fiados
	Leftover      float64 `json:"leftover"`       // Troco não aplicado, devolvido ao chamador
	DebtsSettled  int     `json:"debts_settled"`  // Fiados quitados integralmente nesta chamada
}

// DebtService é o motor de fiado e liquidação: cria fiados com abate atômico
// de estoque e aplica pagamentos contra os fiados abertos de um sócio, sempre
// do mais antigo para o mais recente.
type DebtService struct {
	debts    debt.Repository
	products product.Repository
	payments payment.Repository
	tx       database.TxManager
	logger   logger.Logger
}

// NewDebtService cria uma nova instância de DebtService
func NewDebtService(
	debts debt.Repository,
	products product.Repository,
	payments payment.Repository,
	tx database.TxManager,
	logger logger.Logger,
) *DebtService {
	return &DebtService{
		debts:    debts,
		products: products,
		payments: payments,
		tx:       tx,
		logger:   logger,
	}
}

// CreateDebt cria um fiado pendente para o sócio, abatendo o estoque de cada
// item. Tudo acontece em uma única transação: qualquer item sem estoque
// desfaz os abates anteriores e nenhum fiado é criado.
func (s *DebtService) CreateDebt(ctx context.Context, memberID, memberName string, items []DebtItemInput) (*debt.Debt, error) {
	var created *debt.Debt

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		debtItems := make([]debt.Item, 0, len(items))
		totalAmount := 0.0

		for _, item := range items {
			p, err := s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}

			if !p.HasStock(item.Quantity) {
				return &InsufficientStockError{
					ProductName: p.Name,
					Stock:       p.Stock,
					Requested:   item.Quantity,
				}
			}

			if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}

			debtItems = append(debtItems, debt.Item{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  item.Quantity,
				UnitPrice: p.SalePrice,
			})
			totalAmount += float64(item.Quantity) * p.SalePrice
		}

		d, err := debt.NewDebt(memberID, memberName, debtItems, totalAmount)
		if err != nil {
			return err
		}

		if err := s.debts.Create(ctx, d); err != nil {
			return err
		}

		created = d
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("fiado criado",
		"debt_id", created.ID, "member_id", memberID, "total", created.TotalAmount)

	return created, nil
}

// SettleFull quita um fiado integralmente e registra o recebimento
// correspondente no livro-caixa
func (s *DebtService) SettleFull(ctx context.Context, debtID string) (*debt.Debt, error) {
	var settled *debt.Debt

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		d, err := s.debts.FindByID(ctx, debtID)
		if err != nil {
			return err
		}

		if d.IsPaid() {
			return ErrDebtAlreadyPaid
		}

		d.MarkPaid()
		if err := s.debts.Update(ctx, d); err != nil {
			return err
		}

		now := time.Now()
		p, err := payment.NewPayment(d.MemberID, d.MemberName, d.TotalAmount,
			payment.TypeProduct, int(now.Month()), now.Year(),
			"quitação de fiado: "+describeItems(d.Items))
		if err != nil {
			return err
		}

		if err := s.payments.Create(ctx, p); err != nil {
			return err
		}

		settled = d
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("fiado quitado", "debt_id", settled.ID, "amount", settled.TotalAmount)

	return settled, nil
}

// SettlePartial aplica amount contra os fiados pendentes do sócio, do mais
// antigo para o mais recente. O chamador não escolhe o fiado: a política de
// alocação sempre quita as obrigações mais antigas primeiro.
//
// Gera exatamente um recebimento com o valor efetivamente aplicado. Troco
// além das dívidas abertas é devolvido em Leftover e não é persistido em
// lugar nenhum: a decisão sobre o que fazer com ele é da interface.
func (s *DebtService) SettlePartial(ctx context.Context, memberID string, amount float64) (*SettlementResult, error) {
	if !(amount > 0) {
		return nil, ErrInvalidAmount
	}

	result := &SettlementResult{}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		pending, err := s.debts.FindPendingByMember(ctx, memberID)
		if err != nil {
			return err
		}

		if len(pending) == 0 {
			return ErrNoPendingDebts
		}

		memberName := pending[0].MemberName
		remaining := amount

		for _, d := range pending {
			if remaining <= 0 {
				break
			}

			applied := d.Apply(remaining)
			remaining -= applied

			if err := s.debts.Update(ctx, d); err != nil {
				return err
			}

			if d.IsPaid() {
				result.DebtsSettled++
			}
		}

		result.AmountApplied = amount - remaining
		result.Leftover = remaining

		if result.AmountApplied > 0 {
			now := time.Now()
			p, err := payment.NewPayment(memberID, memberName,
				result.AmountApplied, payment.TypeProduct,
				int(now.Month()), now.Year(), "pagamento parcial de fiado")
			if err != nil {
				return err
			}

			if err := s.payments.Create(ctx, p); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("liquidação parcial aplicada",
		"member_id", memberID,
		"amount", amount,
		"applied", result.AmountApplied,
		"leftover", result.Leftover,
		"debts_settled", result.DebtsSettled)

	return result, nil
}

// describeItems resume as linhas do fiado para o comentário do recebimento
func describeItems(items []debt.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}
	return strings.Join(parts, ", ")
}
