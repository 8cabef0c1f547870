// Package email provides EmailSender adapters
package email

import (
	"context"
	"fmt"

	"github.com/alchemorsel/personal-chef/internal/infrastructure/config"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// sendDialer is satisfied by *gomail.Dialer
type sendDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers email through an SMTP relay
type SMTPSender struct {
	dialer      sendDialer
	fromAddress string
	fromName    string
	logger      *zap.Logger
}

var _ outbound.EmailSender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP sender from configuration
func NewSMTPSender(cfg config.EmailConfig, logger *zap.Logger) *SMTPSender {
	logger.Info("SMTP email sender initialized",
		zap.String("host", cfg.SMTPHost),
		zap.Int("port", cfg.SMTPPort),
		zap.String("from", cfg.FromAddress))

	return &SMTPSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      logger.Named("smtp-sender"),
	}
}

// Send builds a multipart message with a plain-text body and an optional
// HTML alternative, then dials the relay and sends it.
func (s *SMTPSender) Send(ctx context.Context, msg outbound.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("Failed to send email", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("smtp send: %w", err)
	}

	s.logger.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
