package service

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/academia-backoffice/internal/domain/member"
	"github.com/hugohenrick/academia-backoffice/internal/domain/payment"
	"github.com/hugohenrick/academia-backoffice/internal/domain/reminder"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
	"github.com/hugohenrick/academia-backoffice/pkg/notifier"
)

// Erros do envio de lembretes
var (
	ErrNotifierDisabled = errors.New("webhook de WhatsApp não configurado")
	ErrMemberHasNoPhone = errors.New("sócio não possui telefone cadastrado")
)

// BulkReminderResult é o resumo do envio em lote
type BulkReminderResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// ReminderService orquestra o envio de lembretes de mensalidade e o registro
// dos marcadores de cobrança. O marcador é gravado mesmo quando o webhook
// falha; o reenvio é sempre permitido.
type ReminderService struct {
	members   member.Repository
	payments  payment.Repository
	reminders reminder.Repository
	notifier  notifier.Notifier
	logger    logger.Logger
}

// NewReminderService cria uma nova instância de ReminderService.
// O notifier pode ser nil quando o webhook não está configurado.
func NewReminderService(
	members member.Repository,
	payments payment.Repository,
	reminders reminder.Repository,
	notifier notifier.Notifier,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		members:   members,
		payments:  payments,
		reminders: reminders,
		notifier:  notifier,
		logger:    logger,
	}
}

// SendToMember envia um lembrete de mensalidade para um sócio e grava o
// marcador de cobrança da competência. O marcador é gravado antes do envio,
// de forma que uma falha do webhook não o perde.
func (s *ReminderService) SendToMember(ctx context.Context, memberID string, month, year int) (*reminder.Reminder, error) {
	if s.notifier == nil {
		return nil, ErrNotifierDisabled
	}

	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if m.Phone == "" {
		return nil, ErrMemberHasNoPhone
	}

	r, err := reminder.NewReminder(m.ID, month, year)
	if err != nil {
		return nil, err
	}

	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, err
	}

	if err := s.sendMessage(ctx, m); err != nil {
		s.logger.Error("falha ao enviar lembrete", "member_id", m.ID, "error", err)
		return nil, err
	}

	return r, nil
}

// SendBulk envia lembretes para todos os sócios ativos, não isentos, sem
// mensalidade registrada na competência. Falhas individuais do webhook são
// contabilizadas e nunca interrompem o lote.
func (s *ReminderService) SendBulk(ctx context.Context, month, year int) (*BulkReminderResult, error) {
	if s.notifier == nil {
		return nil, ErrNotifierDisabled
	}

	pending, err := s.PendingMembers(ctx, month, year)
	if err != nil {
		return nil, err
	}

	result := &BulkReminderResult{}
	for _, m := range pending {
		if m.Phone == "" {
			s.logger.Warn("sócio sem telefone, lembrete ignorado", "member_id", m.ID)
			result.Failed++
			continue
		}

		r, err := reminder.NewReminder(m.ID, month, year)
		if err != nil {
			result.Failed++
			continue
		}
		if err := s.reminders.Create(ctx, r); err != nil {
			s.logger.Error("falha ao gravar marcador de cobrança", "member_id", m.ID, "error", err)
			result.Failed++
			continue
		}

		if err := s.sendMessage(ctx, m); err != nil {
			s.logger.Error("falha ao enviar lembrete", "member_id", m.ID, "error", err)
			result.Failed++
			continue
		}

		result.Success++
	}

	return result, nil
}

// PendingMembers lista os sócios que ainda não pagaram a mensalidade da
// competência: ativos, não isentos e sem recebimento do tipo mensalidade
// no mês/ano informado.
func (s *ReminderService) PendingMembers(ctx context.Context, month, year int) ([]*member.Member, error) {
	payments, err := s.payments.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	paid := make(map[string]bool)
	for _, p := range payments {
		if p.Type == payment.TypeMembership {
			paid[p.MemberID] = true
		}
	}

	total, err := s.members.Count(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.members.List(ctx, total, 0)
	if err != nil {
		return nil, err
	}

	pending := make([]*member.Member, 0)
	for _, m := range members {
		if !m.Active || m.Exempt || paid[m.ID] {
			continue
		}
		pending = append(pending, m)
	}

	return pending, nil
}

// ListMarkers lista os marcadores de cobrança de uma competência
func (s *ReminderService) ListMarkers(ctx context.Context, month, year int) ([]*reminder.Reminder, error) {
	return s.reminders.ListByPeriod(ctx, month, year)
}

func (s *ReminderService) sendMessage(ctx context.Context, m *member.Member) error {
	return s.notifier.SendReminder(ctx, notifier.ReminderMessage{
		Phone:      m.Phone,
		MemberName: m.Name,
		Amount:     m.PlanCost,
		Type:       string(payment.TypeMembership),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}
