package email

import (
	"context"

	"weathermail/internal/logger"
	"weathermail/internal/service"
)

// LogSender logs the message instead of delivering it. Wired in when DRY_RUN
// is set, so a full run can be exercised without a SendGrid key.
type LogSender struct{}

func (s *LogSender) SendEmail(ctx context.Context, from service.EmailAddress, to []service.EmailAddress, email service.Email) error {
	log := logger.FromContext(ctx)

	addresses := make([]string, 0, len(to))
	for _, addr := range to {
		addresses = append(addresses, addr.Address)
	}

	log.WithField("from", from.Address).
		WithField("to", addresses).
		WithField("subject", email.Subject).
		Info("dry run, not sending")
	log.Debug(email.HTML)

	return nil
}
