package adapter

import (
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
)

// NewNotificationSender picks the delivery channel from cfg: SMTP when a host
// and sender are set, the webhook relay when a URL is set, otherwise the
// log-only development sender.
func NewNotificationSender(cfg config.Notifier, log *logger.Logger) (NotificationSender, error) {
	switch {
	case cfg.SMTPConfigured():
		log.Info().Str("func", "NewNotificationSender").Str("host", cfg.SMTP.Host).Msg("using smtp delivery")
		return NewSMTPSender(cfg.SMTP, cfg.SendTimeout, log), nil
	case cfg.WebhookURL != "":
		log.Info().Str("func", "NewNotificationSender").Msg("using webhook delivery")
		return NewWebhookSender(cfg.WebhookURL, cfg.WebhookToken, cfg.SendTimeout, log)
	default:
		log.Warn().Str("func", "NewNotificationSender").Msg("no delivery channel configured, codes will be logged")
		return NewLogSender(log), nil
	}
}
