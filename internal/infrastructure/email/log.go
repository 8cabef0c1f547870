package email

import (
	"context"

	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"go.uber.org/zap"
)

// LogSender writes emails to the log instead of sending them. It backs
// the "log" provider in development.
type LogSender struct {
	logger *zap.Logger
}

var _ outbound.EmailSender = (*LogSender)(nil)

// NewLogSender creates a log-only sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("log-sender")}
}

// Send logs the message
func (s *LogSender) Send(ctx context.Context, msg outbound.EmailMessage) error {
	s.logger.Info("Email (not sent)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.TextBody),
		zap.Bool("has_html", msg.HTMLBody != ""))
	return nil
}
