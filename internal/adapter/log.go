package adapter

import (
	"context"

	"github.com/MKhiriev/go-lost-found/internal/logger"
)

type logSender struct {
	logger *logger.Logger
}

// NewLogSender returns a development [NotificationSender] that writes the
// code to the log instead of delivering it. Never used in production.
func NewLogSender(log *logger.Logger) NotificationSender {
	return &logSender{logger: log}
}

func (l *logSender) Send(ctx context.Context, address, code string) error {
	if address == "" {
		return ErrRecipientRequired
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*logSender.Send").
		Str("address", address).
		Str("otp_code", code).
		Msg("no delivery channel configured, one-time code logged")
	return nil
}
