package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDebt(t *testing.T, total float64) *Debt {
	t.Helper()
	d, err := NewDebt("m1", "João", []Item{
		{ProductID: "p1", Name: "Água", Quantity: 1, UnitPrice: total},
	}, total)
	require.NoError(t, err)
	return d
}

func TestNewDebtValidation(t *testing.T) {
	_, err := NewDebt("", "João", []Item{{ProductID: "p1", Quantity: 1}}, 10)
	assert.ErrorIs(t, err, ErrEmptyMember)

	_, err = NewDebt("m1", "João", nil, 0)
	assert.ErrorIs(t, err, ErrNoItems)

	d := newTestDebt(t, 10)
	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, 0.0, d.PaidAmount)
	assert.Nil(t, d.PaidAt)
}

func TestApplyPartial(t *testing.T) {
	d := newTestDebt(t, 100)

	applied := d.Apply(40)

	assert.Equal(t, 40.0, applied)
	assert.Equal(t, 40.0, d.PaidAmount)
	assert.Equal(t, 60.0, d.Outstanding())
	assert.Equal(t, StatusPending, d.Status)
}

func TestApplyCapsAtOutstanding(t *testing.T) {
	d := newTestDebt(t, 100)
	d.Apply(70)

	applied := d.Apply(70)

	assert.Equal(t, 30.0, applied)
	assert.True(t, d.IsPaid())
	assert.Equal(t, d.TotalAmount, d.PaidAmount)
	assert.NotNil(t, d.PaidAt)
}

func TestApplyWithinTolerance(t *testing.T) {
	// Um resíduo menor que a tolerância quita o fiado
	d := newTestDebt(t, 100)

	d.Apply(99.995)

	assert.True(t, d.IsPaid())
	assert.Equal(t, 100.0, d.PaidAmount)
}

func TestApplyHealsOverpaidDebt(t *testing.T) {
	// Registro inconsistente: paid_amount já cobre o total mas o status
	// permaneceu pendente. Apply corrige sem consumir nada.
	d := newTestDebt(t, 50)
	d.PaidAmount = 50

	applied := d.Apply(30)

	assert.Equal(t, 0.0, applied)
	assert.True(t, d.IsPaid())
}

func TestApplyIsTerminal(t *testing.T) {
	d := newTestDebt(t, 50)
	d.MarkPaid()

	applied := d.Apply(10)

	assert.Equal(t, 0.0, applied)
	assert.Equal(t, 50.0, d.PaidAmount)
	assert.True(t, d.IsPaid())
}

func TestMarkPaid(t *testing.T) {
	d := newTestDebt(t, 80)
	d.Apply(20)

	d.MarkPaid()

	assert.Equal(t, StatusPaid, d.Status)
	assert.Equal(t, 80.0, d.PaidAmount)
	assert.Equal(t, 0.0, d.Outstanding())
	require.NotNil(t, d.PaidAt)
}
