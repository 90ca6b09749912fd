package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-lost-found/internal/logger"
)

// webhookPayload is the JSON body POSTed to the relay endpoint.
type webhookPayload struct {
	Address string `json:"address"`
	Code    string `json:"code"`
	Subject string `json:"subject"`
}

type webhookSender struct {
	client   *resty.Client
	endpoint string
	token    string
	logger   *logger.Logger
}

// NewWebhookSender constructs a [NotificationSender] that relays codes to an
// HTTP endpoint (for example a transactional mail provider). token, when
// non-empty, is attached as a bearer token.
//
// Returns an error if endpoint is empty or not an absolute http(s) URL.
func NewWebhookSender(endpoint, token string, timeout time.Duration, log *logger.Logger) (NotificationSender, error) {
	endpoint, err := normalizeEndpoint(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &webhookSender{
		client:   client,
		endpoint: endpoint,
		token:    strings.TrimSpace(token),
		logger:   log,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return u.String(), nil
}

// Send implements [NotificationSender].
func (w *webhookSender) Send(ctx context.Context, address, code string) error {
	if address == "" {
		return ErrRecipientRequired
	}

	req := w.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{Address: address, Code: code, Subject: otpSubject})
	if w.token != "" {
		req.SetAuthToken(w.token)
	}

	resp, err := req.Post(w.endpoint)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*webhookSender.Send").
		Int("status", resp.StatusCode()).
		Msg("one-time code relayed")

	return nil
}
