package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/academia-backoffice/internal/domain/debt"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/product"
)

// nopLogger descarta as mensagens de log nos testes
type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// fakeTxManager executa o bloco diretamente, sem transação real
type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeDebtRepo struct {
	debts   map[string]*debt.Debt
	ordered []string
	updates int
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: map[string]*debt.Debt{}}
}

func (r *fakeDebtRepo) Create(ctx context.Context, d *debt.Debt) error {
	r.debts[d.ID] = d
	r.ordered = append(r.ordered, d.ID)
	return nil
}

func (r *fakeDebtRepo) FindByID(ctx context.Context, id string) (*debt.Debt, error) {
	d, ok := r.debts[id]
	if !ok {
		return nil, assert.AnError
	}
	return d, nil
}

func (r *fakeDebtRepo) ListPending(ctx context.Context) ([]*debt.Debt, error) {
	var out []*debt.Debt
	for _, id := range r.ordered {
		if r.debts[id].Status == debt.StatusPending {
			out = append(out, r.debts[id])
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) FindPendingByMember(ctx context.Context, memberID string) ([]*debt.Debt, error) {
	var out []*debt.Debt
	for _, id := range r.ordered {
		d := r.debts[id]
		if d.MemberID == memberID && d.Status == debt.StatusPending {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) ListByMember(ctx context.Context, memberID string) ([]*debt.Debt, error) {
	var out []*debt.Debt
	for _, id := range r.ordered {
		if r.debts[id].MemberID == memberID {
			out = append(out, r.debts[id])
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) Update(ctx context.Context, d *debt.Debt) error {
	r.debts[d.ID] = d
	r.updates++
	return nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*product.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, assert.AnError
	}
	return p, nil
}

func (r *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return assert.AnError
	}
	if p.Stock < quantity {
		return product.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int, error) {
	return len(r.products), nil
}

type fakePaymentRepo struct {
	created []*payment.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	return nil, assert.AnError
}

func (r *fakePaymentRepo) ListByPeriod(ctx context.Context, month, year int) ([]*payment.Payment, error) {
	return r.created, nil
}

func (r *fakePaymentRepo) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*payment.Payment, error) {
	return nil, nil
}

func (r *fakePaymentRepo) SumByPeriod(ctx context.Context, month, year int) (map[payment.Type]float64, error) {
	sums := map[payment.Type]float64{}
	for _, p := range r.created {
		sums[p.Type] += p.Amount
	}
	return sums, nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func newDebtServiceForTest(debts *fakeDebtRepo, products *fakeProductRepo, payments *fakePaymentRepo) *DebtService {
	return NewDebtService(debts, products, payments, fakeTxManager{}, nopLogger{})
}

func pendingDebt(t *testing.T, memberID string, amount float64, createdAt time.Time) *debt.Debt {
	t.Helper()
	d, err := debt.NewDebt(memberID, "João", []debt.Item{
		{ProductID: "p1", Name: "Água", Quantity: 1, UnitPrice: amount},
	}, amount)
	require.NoError(t, err)
	d.CreatedAt = createdAt
	return d
}

func TestCreateDebt(t *testing.T) {
	p1, _ := product.NewProduct("Água", 1.0, 3.0, 10)
	p2, _ := product.NewProduct("Barra de proteína", 5.0, 9.5, 2)
	products := newFakeProductRepo(p1, p2)
	debts := newFakeDebtRepo()
	payments := &fakePaymentRepo{}
	svc := newDebtServiceForTest(debts, products, payments)

	d, err := svc.CreateDebt(context.Background(), "m1", "João", []DebtItemInput{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, debt.StatusPending, d.Status)
	assert.InDelta(t, 15.5, d.TotalAmount, 0.001)
	assert.Len(t, d.Items, 2)
	assert.Equal(t, 3.0, d.Items[0].UnitPrice)
	assert.Equal(t, 8, p1.Stock)
	assert.Equal(t, 1, p2.Stock)
	assert.Empty(t, payments.created, "criar fiado não gera recebimento")
}

func TestCreateDebtInsufficientStock(t *testing.T) {
	p1, _ := product.NewProduct("Água", 1.0, 3.0, 1)
	products := newFakeProductRepo(p1)
	svc := newDebtServiceForTest(newFakeDebtRepo(), products, &fakePaymentRepo{})

	_, err := svc.CreateDebt(context.Background(), "m1", "João", []DebtItemInput{
		{ProductID: p1.ID, Quantity: 3},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Água", stockErr.ProductName)
	assert.Equal(t, 1, stockErr.Stock)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Contains(t, err.Error(), "estoque insuficiente")
}

func TestSettleFull(t *testing.T) {
	debts := newFakeDebtRepo()
	payments := &fakePaymentRepo{}
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), payments)

	d := pendingDebt(t, "m1", 50, time.Now())
	require.NoError(t, debts.Create(context.Background(), d))

	settled, err := svc.SettleFull(context.Background(), d.ID)

	require.NoError(t, err)
	assert.True(t, settled.IsPaid())
	assert.Equal(t, settled.TotalAmount, settled.PaidAmount)
	assert.NotNil(t, settled.PaidAt)
	require.Len(t, payments.created, 1)
	assert.Equal(t, 50.0, payments.created[0].Amount)
	assert.Equal(t, payment.TypeProduct, payments.created[0].Type)
	assert.Contains(t, payments.created[0].Comment, "quitação de fiado")
}

func TestSettleFullAlreadyPaid(t *testing.T) {
	debts := newFakeDebtRepo()
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), &fakePaymentRepo{})

	d := pendingDebt(t, "m1", 50, time.Now())
	d.MarkPaid()
	require.NoError(t, debts.Create(context.Background(), d))

	_, err := svc.SettleFull(context.Background(), d.ID)
	assert.ErrorIs(t, err, ErrDebtAlreadyPaid)
}

func TestSettlePartialAcrossDebts(t *testing.T) {
	// Dois fiados de 500 e 300; um pagamento de 600 quita o primeiro e
	// abate 100 do segundo
	debts := newFakeDebtRepo()
	payments := &fakePaymentRepo{}
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), payments)

	older := pendingDebt(t, "m1", 500, time.Now().Add(-time.Hour))
	newer := pendingDebt(t, "m1", 300, time.Now())
	require.NoError(t, debts.Create(context.Background(), older))
	require.NoError(t, debts.Create(context.Background(), newer))

	result, err := svc.SettlePartial(context.Background(), "m1", 600)

	require.NoError(t, err)
	assert.Equal(t, 600.0, result.AmountApplied)
	assert.Equal(t, 0.0, result.Leftover)
	assert.Equal(t, 1, result.DebtsSettled)

	assert.True(t, older.IsPaid())
	assert.Equal(t, debt.StatusPending, newer.Status)
	assert.Equal(t, 100.0, newer.PaidAmount)

	require.Len(t, payments.created, 1)
	assert.Equal(t, 600.0, payments.created[0].Amount)
}

func TestSettlePartialWithLeftover(t *testing.T) {
	// Pagamento de 900 sobre 800 em dívidas: quita tudo, devolve 100 de troco
	debts := newFakeDebtRepo()
	payments := &fakePaymentRepo{}
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), payments)

	older := pendingDebt(t, "m1", 500, time.Now().Add(-time.Hour))
	newer := pendingDebt(t, "m1", 300, time.Now())
	require.NoError(t, debts.Create(context.Background(), older))
	require.NoError(t, debts.Create(context.Background(), newer))

	result, err := svc.SettlePartial(context.Background(), "m1", 900)

	require.NoError(t, err)
	assert.Equal(t, 800.0, result.AmountApplied)
	assert.Equal(t, 100.0, result.Leftover)
	assert.Equal(t, 2, result.DebtsSettled)
	assert.True(t, older.IsPaid())
	assert.True(t, newer.IsPaid())

	// Exatamente um recebimento, com o valor aplicado e não o valor pago
	require.Len(t, payments.created, 1)
	assert.Equal(t, 800.0, payments.created[0].Amount)
}

func TestSettlePartialNoPendingDebts(t *testing.T) {
	svc := newDebtServiceForTest(newFakeDebtRepo(), newFakeProductRepo(), &fakePaymentRepo{})

	_, err := svc.SettlePartial(context.Background(), "m1", 100)
	assert.ErrorIs(t, err, ErrNoPendingDebts)
}

func TestSettlePartialInvalidAmount(t *testing.T) {
	svc := newDebtServiceForTest(newFakeDebtRepo(), newFakeProductRepo(), &fakePaymentRepo{})

	for _, amount := range []float64{0, -10} {
		_, err := svc.SettlePartial(context.Background(), "m1", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestSettlePartialHealsInconsistentDebt(t *testing.T) {
	// Um fiado com paid_amount já no total (inconsistência pré-existente)
	// é quitado sem consumir nada do pagamento
	debts := newFakeDebtRepo()
	payments := &fakePaymentRepo{}
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), payments)

	broken := pendingDebt(t, "m1", 200, time.Now().Add(-time.Hour))
	broken.PaidAmount = 200
	healthy := pendingDebt(t, "m1", 300, time.Now())
	require.NoError(t, debts.Create(context.Background(), broken))
	require.NoError(t, debts.Create(context.Background(), healthy))

	result, err := svc.SettlePartial(context.Background(), "m1", 300)

	require.NoError(t, err)
	assert.Equal(t, 300.0, result.AmountApplied)
	assert.Equal(t, 2, result.DebtsSettled)
	assert.True(t, broken.IsPaid())
	assert.True(t, healthy.IsPaid())
}

func TestSettlePartialConservesMoney(t *testing.T) {
	// A soma dos incrementos de paid_amount é igual ao valor aplicado
	debts := newFakeDebtRepo()
	svc := newDebtServiceForTest(debts, newFakeProductRepo(), &fakePaymentRepo{})

	amounts := []float64{120, 80, 45.5, 200}
	total := 0.0
	for i, a := range amounts {
		d := pendingDebt(t, "m1", a, time.Now().Add(time.Duration(i)*time.Minute))
		require.NoError(t, debts.Create(context.Background(), d))
		total += a
	}

	applied := 0.0
	for _, pay := range []float64{100, 100, 100} {
		result, err := svc.SettlePartial(context.Background(), "m1", pay)
		require.NoError(t, err)
		applied += result.AmountApplied
	}

	paid := 0.0
	for _, d := range debts.debts {
		paid += d.PaidAmount
	}
	assert.InDelta(t, applied, paid, 0.001)
	assert.InDelta(t, 300.0, applied, 0.001)
}
