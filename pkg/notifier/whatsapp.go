package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hugohenrick/academia-backoffice/pkg/logger"
)

// Notifier envia lembretes de pagamento para os sócios da academia
type Notifier interface {
	SendReminder(ctx context.Context, reminder ReminderMessage) error
}

// ReminderMessage é o payload enviado ao webhook de WhatsApp
type ReminderMessage struct {
	Phone      string  `json:"phone"`
	MemberName string  `json:"memberName"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Timestamp  string  `json:"timestamp"`
}

// WhatsAppNotifier envia mensagens através de um webhook externo (n8n, Zapier etc.)
type WhatsAppNotifier struct {
	webhookURL string
	client     *http.Client
	logger     logger.Logger
}

// NewWhatsAppNotifier cria um notificador a partir da variável de ambiente
// WHATSAPP_WEBHOOK_URL. Retorna nil quando a variável não está definida,
// caso em que os lembretes são apenas registrados sem envio.
func NewWhatsAppNotifier(logger logger.Logger) *WhatsAppNotifier {
	webhookURL := os.Getenv("WHATSAPP_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	return &WhatsAppNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// SendReminder envia o lembrete para o webhook configurado
func (n *WhatsAppNotifier) SendReminder(ctx context.Context, reminder ReminderMessage) error {
	if reminder.Timestamp == "" {
		reminder.Timestamp = time.Now().Format(time.RFC3339)
	}

	body, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("erro ao serializar lembrete: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar webhook de WhatsApp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		n.logger.Warn("webhook de WhatsApp retornou erro",
			"status", resp.StatusCode,
			"body", string(respBody))
		return fmt.Errorf("webhook de WhatsApp retornou status %d", resp.StatusCode)
	}

	return nil
}
