package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/adapter"
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
)

// fallbackSendTimeout bounds delivery when no positive timeout is configured.
const fallbackSendTimeout = 10 * time.Second

type codeGenerator interface {
	Generate() (string, error)
}

// otpChallengeManager keeps at most one outstanding code per user.
//
// Issuing persists code and expiry with a single UPDATE, superseding any
// earlier code. Verification consumes the code with a conditional UPDATE,
// so of two concurrent verifiers at most one observes OTPSuccess.
type otpChallengeManager struct {
	userRepository store.UserRepository
	sender         adapter.NotificationSender
	codes          codeGenerator

	ttl         time.Duration
	sendTimeout time.Duration
	production  bool

	now func() time.Time
}

func NewOTPChallengeManager(userRepository store.UserRepository, sender adapter.NotificationSender, appCfg config.App, notifierCfg config.Notifier) OTPChallengeManager {
	sendTimeout := notifierCfg.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = fallbackSendTimeout
	}

	return &otpChallengeManager{
		userRepository: userRepository,
		sender:         sender,
		codes:          utils.NewOTPGenerator(),
		ttl:            appCfg.OTPTTL,
		sendTimeout:    sendTimeout,
		production:     appCfg.IsProduction(),
		now:            time.Now,
	}
}

// Issue generates a six-digit code valid for the configured TTL, stores it on
// the user and sends it to the user's email.
//
// Delivery runs under the configured send timeout. When delivery fails:
//   - production: ErrNotificationDelivery is returned. The stored code stays
//     in place and is superseded by the next issue.
//   - otherwise: the code is written to the log as a warning and nil is
//     returned so the flow can be completed locally.
func (m *otpChallengeManager) Issue(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	code, err := m.codes.Generate()
	if err != nil {
		return err
	}

	challenge := models.OTPChallenge{
		Code:      code,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err = m.userRepository.SaveChallenge(ctx, user.ID, challenge); err != nil {
		log.Err(err).Str("func", "*otpChallengeManager.Issue").Str("user_id", user.ID).Msg("error saving otp challenge")
		return fmt.Errorf("error saving otp challenge: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	if err = m.sender.Send(sendCtx, user.Email, code); err != nil {
		if m.production {
			log.Err(err).Str("func", "*otpChallengeManager.Issue").Str("user_id", user.ID).Msg("otp delivery failed")
			return fmt.Errorf("%w: %w", ErrNotificationDelivery, err)
		}
		log.Warn().Err(err).
			Str("func", "*otpChallengeManager.Issue").
			Str("address", user.Email).
			Str("otp_code", code).
			Msg("otp delivery failed, code logged for development")
		return nil
	}

	log.Info().Str("user_id", user.ID).Time("expires_at", challenge.ExpiresAt).Msg("otp challenge issued")
	return nil
}

// Verify resolves the outcome of submitting code for the account with email.
//
// An unknown email is reported as OTPNoActiveChallenge. Expiry is checked
// before the code, so a correct but expired code yields OTPExpired.
func (m *otpChallengeManager) Verify(ctx context.Context, email, code string) (models.OTPOutcome, models.User, error) {
	log := logger.FromContext(ctx)

	user, err := m.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.OTPNoActiveChallenge, models.User{}, nil
		}
		return models.OTPNoActiveChallenge, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasActiveChallenge() {
		return models.OTPNoActiveChallenge, user, nil
	}

	now := m.now()
	if now.After(*user.OTPExpiresAt) {
		return models.OTPExpired, user, nil
	}
	if subtle.ConstantTimeCompare([]byte(*user.OTPCode), []byte(code)) != 1 {
		return models.OTPMismatch, user, nil
	}

	consumed, err := m.userRepository.ConsumeChallenge(ctx, user.ID, code, now)
	if err != nil {
		log.Err(err).Str("func", "*otpChallengeManager.Verify").Str("user_id", user.ID).Msg("error consuming otp challenge")
		return models.OTPNoActiveChallenge, user, fmt.Errorf("error consuming otp challenge: %w", err)
	}
	if !consumed {
		// superseded, swept or consumed concurrently since the read above
		return models.OTPNoActiveChallenge, user, nil
	}

	user.OTPCode = nil
	user.OTPExpiresAt = nil
	user.IsVerified = true
	user.UpdatedAt = now

	return models.OTPSuccess, user, nil
}
