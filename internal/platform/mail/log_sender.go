package mail

import (
	"context"
	"log/slog"

	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

var _ portssvc.MailSender = (*LogSender)(nil)

// LogSender writes outgoing mail to the log instead of delivering it. Used
// in non-production environments where no SendGrid key is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-only mail sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendMail(_ context.Context, to string, subject string, intro string, details []portssvc.MessageDetail) error {
	attrs := []any{"to", to, "subject", subject, "intro", intro}
	for _, d := range details {
		attrs = append(attrs, d.Label, d.Value)
	}
	s.logger.Info("Outgoing mail (log only)", attrs...)
	return nil
}
