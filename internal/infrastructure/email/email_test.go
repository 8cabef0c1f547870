package email

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"testing"

	"github.com/alchemorsel/personal-chef/internal/infrastructure/config"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func newTestSender(d sendDialer) *SMTPSender {
	s := NewSMTPSender(config.EmailConfig{
		SMTPHost:    "smtp.test",
		SMTPPort:    587,
		FromAddress: "chef@example.com",
		FromName:    "Personal Chef",
	}, zap.NewNop())
	s.dialer = d
	return s
}

func TestSMTPSender_Send(t *testing.T) {
	// Arrange
	dialer := &recordingDialer{}
	sender := newTestSender(dialer)

	// Act
	err := sender.Send(context.Background(), outbound.EmailMessage{
		To:       "cook@example.com",
		Subject:  "🛒 Shopping List: Pancakes",
		TextBody: "Shopping List - Pancakes\n2 servings",
		HTMLBody: "<h1>Shopping List</h1>",
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	m := dialer.sent[0]
	assert.Equal(t, []string{"cook@example.com"}, m.GetHeader("To"))
	require.Len(t, m.GetHeader("Subject"), 1)
	subject, err := new(mime.WordDecoder).DecodeHeader(m.GetHeader("Subject")[0])
	require.NoError(t, err)
	assert.Equal(t, "🛒 Shopping List: Pancakes", subject)
	require.Len(t, m.GetHeader("From"), 1)
	assert.Contains(t, m.GetHeader("From")[0], "chef@example.com")

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/plain")
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPSender_SendFailure(t *testing.T) {
	sender := newTestSender(&recordingDialer{err: errors.New("connection refused")})

	err := sender.Send(context.Background(), outbound.EmailMessage{To: "cook@example.com", Subject: "s", TextBody: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPSender_CancelledContext(t *testing.T) {
	dialer := &recordingDialer{}
	sender := newTestSender(dialer)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, outbound.EmailMessage{To: "cook@example.com"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dialer.sent)
}

func TestLogSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewLogSender(zap.New(core))

	err := sender.Send(context.Background(), outbound.EmailMessage{To: "cook@example.com", Subject: "Hi", TextBody: "body"})

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "cook@example.com", entry.ContextMap()["to"])
	assert.Equal(t, "Hi", entry.ContextMap()["subject"])
}
