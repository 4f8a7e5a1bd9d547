package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/academia-backoffice/internal/domain/member"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/reminder"
	"github.com/hugohenrick/academia-backoffice/pkg/notifier"
)

type fakeMemberRepo struct {
	members []*member.Member
}

func (r *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error { return nil }

func (r *fakeMemberRepo) FindByID(ctx context.Context, id string) (*member.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeMemberRepo) FindByDocument(ctx context.Context, document string) (*member.Member, error) {
	return nil, assert.AnError
}

func (r *fakeMemberRepo) FindByName(ctx context.Context, name string, limit, offset int) ([]*member.Member, error) {
	return nil, nil
}

func (r *fakeMemberRepo) List(ctx context.Context, limit, offset int) ([]*member.Member, error) {
	if limit > len(r.members) {
		limit = len(r.members)
	}
	return r.members[:limit], nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error { return nil }
func (r *fakeMemberRepo) Delete(ctx context.Context, id string) error        { return nil }

func (r *fakeMemberRepo) Count(ctx context.Context) (int, error) {
	return len(r.members), nil
}

func (r *fakeMemberRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	return false, nil
}

type fakeReminderRepo struct {
	created []*reminder.Reminder
}

func (r *fakeReminderRepo) Create(ctx context.Context, rem *reminder.Reminder) error {
	r.created = append(r.created, rem)
	return nil
}

func (r *fakeReminderRepo) ListByPeriod(ctx context.Context, month, year int) ([]*reminder.Reminder, error) {
	return r.created, nil
}

// fakeNotifier registra os envios e pode falhar para telefones marcados
type fakeNotifier struct {
	sent    []notifier.ReminderMessage
	failFor map[string]bool
}

func (n *fakeNotifier) SendReminder(ctx context.Context, msg notifier.ReminderMessage) error {
	if n.failFor[msg.Phone] {
		return assert.AnError
	}
	n.sent = append(n.sent, msg)
	return nil
}

func testMember(t *testing.T, name, phone string, planCost float64) *member.Member {
	t.Helper()
	m, err := member.NewMember("doc-"+name, name, phone, "mensal", planCost)
	require.NoError(t, err)
	return m
}

func TestSendToMember(t *testing.T) {
	m := testMember(t, "João", "+5511999990000", 150)
	members := &fakeMemberRepo{members: []*member.Member{m}}
	reminders := &fakeReminderRepo{}
	sender := &fakeNotifier{}
	svc := NewReminderService(members, &fakePaymentRepo{}, reminders, sender, nopLogger{})

	r, err := svc.SendToMember(context.Background(), m.ID, 7, 2026)

	require.NoError(t, err)
	assert.Equal(t, m.ID, r.MemberID)
	assert.Equal(t, 7, r.Month)
	assert.Equal(t, 2026, r.Year)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+5511999990000", sender.sent[0].Phone)
	assert.Equal(t, "João", sender.sent[0].MemberName)
	assert.Equal(t, 150.0, sender.sent[0].Amount)
	assert.Len(t, reminders.created, 1)
}

func TestSendToMemberMarkerSurvivesWebhookFailure(t *testing.T) {
	m := testMember(t, "João", "+5511999990000", 150)
	members := &fakeMemberRepo{members: []*member.Member{m}}
	reminders := &fakeReminderRepo{}
	sender := &fakeNotifier{failFor: map[string]bool{"+5511999990000": true}}
	svc := NewReminderService(members, &fakePaymentRepo{}, reminders, sender, nopLogger{})

	_, err := svc.SendToMember(context.Background(), m.ID, 7, 2026)

	assert.Error(t, err)
	// O marcador é gravado antes do envio e sobrevive à falha do webhook
	assert.Len(t, reminders.created, 1)
}

func TestSendToMemberWithoutPhone(t *testing.T) {
	m := testMember(t, "João", "", 150)
	members := &fakeMemberRepo{members: []*member.Member{m}}
	svc := NewReminderService(members, &fakePaymentRepo{}, &fakeReminderRepo{}, &fakeNotifier{}, nopLogger{})

	_, err := svc.SendToMember(context.Background(), m.ID, 7, 2026)
	assert.ErrorIs(t, err, ErrMemberHasNoPhone)
}

func TestSendToMemberNotifierDisabled(t *testing.T) {
	svc := NewReminderService(&fakeMemberRepo{}, &fakePaymentRepo{}, &fakeReminderRepo{}, nil, nopLogger{})

	_, err := svc.SendToMember(context.Background(), "m1", 7, 2026)
	assert.ErrorIs(t, err, ErrNotifierDisabled)
}

func TestPendingMembers(t *testing.T) {
	paid := testMember(t, "Pagou", "+5511", 150)
	unpaid := testMember(t, "Deve", "+5522", 150)
	inactive := testMember(t, "Inativo", "+5533", 150)
	inactive.Active = false
	exempt := testMember(t, "Isento", "+5544", 150)
	exempt.Exempt = true

	members := &fakeMemberRepo{members: []*member.Member{paid, unpaid, inactive, exempt}}

	mensalidade, err := payment.NewPayment(paid.ID, paid.Name, 150, payment.TypeMembership, 7, 2026, "")
	require.NoError(t, err)
	produto, err := payment.NewPayment(unpaid.ID, unpaid.Name, 10, payment.TypeProduct, 7, 2026, "")
	require.NoError(t, err)
	payments := &fakePaymentRepo{created: []*payment.Payment{mensalidade, produto}}

	svc := NewReminderService(members, payments, &fakeReminderRepo{}, &fakeNotifier{}, nopLogger{})

	pending, err := svc.PendingMembers(context.Background(), 7, 2026)

	require.NoError(t, err)
	// Compra de produto não conta como mensalidade paga
	require.Len(t, pending, 1)
	assert.Equal(t, unpaid.ID, pending[0].ID)
}

func TestSendBulkTalliesFailures(t *testing.T) {
	ok := testMember(t, "João", "+5511", 150)
	noPhone := testMember(t, "SemFone", "", 150)
	webhookFails := testMember(t, "Maria", "+5522", 150)

	members := &fakeMemberRepo{members: []*member.Member{ok, noPhone, webhookFails}}
	reminders := &fakeReminderRepo{}
	sender := &fakeNotifier{failFor: map[string]bool{"+5522": true}}
	svc := NewReminderService(members, &fakePaymentRepo{}, reminders, sender, nopLogger{})

	result, err := svc.SendBulk(context.Background(), 7, 2026)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 2, result.Failed)

	// Só quem tem telefone ganha marcador; a falha do webhook não o perde
	assert.Len(t, reminders.created, 2)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+5511", sender.sent[0].Phone)
}
