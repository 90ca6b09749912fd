package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
)

const otpSubject = "Your lost & found verification code"

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
	logger   *logger.Logger
}

// NewSMTPSender constructs a [NotificationSender] that emails codes through
// the configured SMTP relay. A new connection is dialled for every message.
func NewSMTPSender(cfg config.SMTP, timeout time.Duration, log *logger.Logger) NotificationSender {
	return &smtpSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		timeout:  timeout,
		logger:   log,
	}
}

// Send implements [NotificationSender].
func (s *smtpSender) Send(ctx context.Context, address, code string) error {
	if address == "" {
		return ErrRecipientRequired
	}

	msg, err := buildOTPMessage(s.from, address, code)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("error creating smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending otp email: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*smtpSender.Send").Msg("one-time code emailed")
	return nil
}

func (s *smtpSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTimeout(s.timeout),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}
	return opts
}

func buildOTPMessage(from, to, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(otpSubject)
	msg.SetBodyString(mail.TypeTextPlain, otpBody(code))
	return msg, nil
}

func otpBody(code string) string {
	return "Your verification code is " + code + ".\n\n" +
		"It expires in a few minutes. If you did not try to sign in, ignore this email.\n"
}
