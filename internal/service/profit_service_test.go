package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/academia-backoffice/internal/domain/expense"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/settings"
	"github.com/hugohenrick/academia-backoffice/internal/domain/tenant"
	pkgtenant "github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

type fakeTenantRepo struct {
	tenant *tenant.Tenant
}

func (r *fakeTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error { return nil }

func (r *fakeTenantRepo) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	if r.tenant == nil || r.tenant.ID != id {
		return nil, assert.AnError
	}
	return r.tenant, nil
}

func (r *fakeTenantRepo) FindBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	return nil, assert.AnError
}

func (r *fakeTenantRepo) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	return nil, nil
}

func (r *fakeTenantRepo) Update(ctx context.Context, t *tenant.Tenant) error { return nil }
func (r *fakeTenantRepo) Delete(ctx context.Context, id string) error        { return nil }
func (r *fakeTenantRepo) Count(ctx context.Context) (int, error)             { return 0, nil }

func (r *fakeTenantRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

type fakeSettingsRepo struct {
	settings *settings.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	if r.settings == nil {
		return nil, assert.AnError
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, s *settings.Settings) error {
	r.settings = s
	return nil
}

type fakeExpenseRepo struct {
	total float64
}

func (r *fakeExpenseRepo) Create(ctx context.Context, e *expense.Expense) error { return nil }

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	return nil, assert.AnError
}

func (r *fakeExpenseRepo) ListByPeriod(ctx context.Context, month, year int) ([]*expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) SumByPeriod(ctx context.Context, month, year int) (float64, error) {
	return r.total, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, e *expense.Expense) error { return nil }
func (r *fakeExpenseRepo) Delete(ctx context.Context, id string) error          { return nil }

// fixedSumPaymentRepo devolve somas fixas por tipo para o relatório
type fixedSumPaymentRepo struct {
	fakePaymentRepo
	sums map[payment.Type]float64
}

func (r *fixedSumPaymentRepo) SumByPeriod(ctx context.Context, month, year int) (map[payment.Type]float64, error) {
	return r.sums, nil
}

func profitTestTenant(t *testing.T) *tenant.Tenant {
	t.Helper()
	gym, err := tenant.NewTenant("ironberg", "Ironberg")
	require.NoError(t, err)
	err = gym.Update("Ironberg", tenant.Branding{}, []tenant.Partner{
		{Name: "Hugo", Percentage: 60},
		{Name: "Rafael", Percentage: 40},
	}, 50) // R$50 por hora de instrução
	require.NoError(t, err)
	return gym
}

func TestProfitSplit(t *testing.T) {
	gym := profitTestTenant(t)

	cfg, err := settings.NewSettings(90) // 90h base por mês
	require.NoError(t, err)
	cfg.DaysOff = map[string]int{"Rafael": 10} // Rafael folgou 10 dias

	svc := NewProfitService(
		&fakeTenantRepo{tenant: gym},
		&fakeSettingsRepo{settings: cfg},
		&fixedSumPaymentRepo{sums: map[payment.Type]float64{
			payment.TypeMembership: 18000,
			payment.TypeProduct:    2000,
		}},
		&fakeExpenseRepo{total: 5000},
	)

	ctx := pkgtenant.WithScope(context.Background(), gym.ID)
	report, err := svc.Split(ctx, 7, 2026)

	require.NoError(t, err)
	assert.Equal(t, 7, report.Month)
	assert.Equal(t, 2026, report.Year)
	assert.InDelta(t, 20000, report.Income, 0.001)
	assert.InDelta(t, 5000, report.Expenses, 0.001)

	require.Len(t, report.Shares, 2)
	hugo, rafael := report.Shares[0], report.Shares[1]

	// Hugo: 90h cheias a R$50 = R$4500
	assert.InDelta(t, 90, hugo.HoursWorked, 0.001)
	assert.InDelta(t, 4500, hugo.Wage, 0.001)

	// Rafael: 90 - 10*(90/30) = 60h a R$50 = R$3000
	assert.InDelta(t, 60, rafael.HoursWorked, 0.001)
	assert.InDelta(t, 3000, rafael.Wage, 0.001)

	// Custo de instrução sai do caixa antes do rateio
	assert.InDelta(t, 7500, report.InstructorCost, 0.001)
	assert.InDelta(t, 7500, report.Profit, 0.001) // 20000 - 5000 - 7500

	assert.InDelta(t, 4500, hugo.ProfitShare, 0.001) // 60% de 7500
	assert.InDelta(t, 9000, hugo.Total, 0.001)       // rateio + horas
	assert.InDelta(t, 3000, rafael.ProfitShare, 0.001)
	assert.InDelta(t, 6000, rafael.Total, 0.001)
}

func TestProfitSplitExternallyPaidPartner(t *testing.T) {
	gym := profitTestTenant(t)

	cfg, err := settings.NewSettings(90)
	require.NoError(t, err)
	cfg.ExternallyPaidInstructors = []string{"Rafael"}

	svc := NewProfitService(
		&fakeTenantRepo{tenant: gym},
		&fakeSettingsRepo{settings: cfg},
		&fixedSumPaymentRepo{sums: map[payment.Type]float64{payment.TypeMembership: 20000}},
		&fakeExpenseRepo{total: 5000},
	)

	ctx := pkgtenant.WithScope(context.Background(), gym.ID)
	report, err := svc.Split(ctx, 7, 2026)

	require.NoError(t, err)

	// Só as horas do Hugo saem do caixa
	assert.InDelta(t, 4500, report.InstructorCost, 0.001)
	assert.InDelta(t, 10500, report.Profit, 0.001) // 20000 - 5000 - 4500

	rafael := report.Shares[1]
	assert.True(t, rafael.ExternallyPaid)
	assert.InDelta(t, 4500, rafael.Wage, 0.001)
	// O total do Rafael não inclui as horas, pagas por fora
	assert.InDelta(t, rafael.ProfitShare, rafael.Total, 0.001)
}

func TestProfitSplitDaysOffClampedAtZero(t *testing.T) {
	gym := profitTestTenant(t)

	cfg, err := settings.NewSettings(90)
	require.NoError(t, err)
	cfg.DaysOff = map[string]int{"Hugo": 45} // Mais folgas que o mês tem

	svc := NewProfitService(
		&fakeTenantRepo{tenant: gym},
		&fakeSettingsRepo{settings: cfg},
		&fixedSumPaymentRepo{sums: nil},
		&fakeExpenseRepo{},
	)

	ctx := pkgtenant.WithScope(context.Background(), gym.ID)
	report, err := svc.Split(ctx, 7, 2026)

	require.NoError(t, err)
	hugo := report.Shares[0]
	assert.Equal(t, 0.0, hugo.HoursWorked)
	assert.Equal(t, 0.0, hugo.Wage)
}

func TestProfitSplitRequiresTenantScope(t *testing.T) {
	svc := NewProfitService(&fakeTenantRepo{}, &fakeSettingsRepo{}, &fixedSumPaymentRepo{}, &fakeExpenseRepo{})

	_, err := svc.Split(context.Background(), 7, 2026)
	assert.ErrorIs(t, err, ErrNoTenantScope)
}

func TestProfitSplitNoPartners(t *testing.T) {
	gym, err := tenant.NewTenant("ironberg", "Ironberg")
	require.NoError(t, err)

	svc := NewProfitService(
		&fakeTenantRepo{tenant: gym},
		&fakeSettingsRepo{},
		&fixedSumPaymentRepo{},
		&fakeExpenseRepo{},
	)

	ctx := pkgtenant.WithScope(context.Background(), gym.ID)
	_, err = svc.Split(ctx, 7, 2026)
	assert.ErrorIs(t, err, ErrNoPartners)
}
