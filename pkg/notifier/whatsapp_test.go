package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestNewWhatsAppNotifierWithoutURL(t *testing.T) {
	t.Setenv("WHATSAPP_WEBHOOK_URL", "")

	assert.Nil(t, NewWhatsAppNotifier(nopLogger{}))
}

func TestSendReminder(t *testing.T) {
	var received ReminderMessage
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("WHATSAPP_WEBHOOK_URL", srv.URL)
	n := NewWhatsAppNotifier(nopLogger{})
	require.NotNil(t, n)

	err := n.SendReminder(context.Background(), ReminderMessage{
		Phone:      "+5511999990000",
		MemberName: "João",
		Amount:     150,
		Type:       "mensalidade",
	})

	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "+5511999990000", received.Phone)
	assert.Equal(t, "João", received.MemberName)
	assert.Equal(t, 150.0, received.Amount)
	assert.Equal(t, "mensalidade", received.Type)
	assert.NotEmpty(t, received.Timestamp, "timestamp é preenchido quando ausente")
}

func TestSendReminderWebhookError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "falhou", http.StatusBadGateway)
	}))
	defer srv.Close()

	t.Setenv("WHATSAPP_WEBHOOK_URL", srv.URL)
	n := NewWhatsAppNotifier(nopLogger{})
	require.NotNil(t, n)

	err := n.SendReminder(context.Background(), ReminderMessage{Phone: "+5511"})

	assert.ErrorContains(t, err, "502")
}
