package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/models"
)

var (
	// ErrValidation marks missing or malformed input. No state is changed.
	ErrValidation = errors.New("invalid data provided")

	// ErrDuplicateAccount is returned by signup when the email is taken,
	// regardless of letter case.
	ErrDuplicateAccount = errors.New("account with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOTPChallenge is the parent of every failed code verification.
	// Use [errors.As] with *OTPChallengeError to read the outcome.
	ErrOTPChallenge = errors.New("otp challenge failed")

	// ErrNotificationDelivery is returned in production when a code could not
	// be delivered.
	ErrNotificationDelivery = errors.New("otp code could not be delivered")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// OTPChallengeError carries the outcome of a failed verification.
type OTPChallengeError struct {
	Outcome models.OTPOutcome
}

func (e *OTPChallengeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOTPChallenge, e.Outcome)
}

// Unwrap makes errors.Is(err, ErrOTPChallenge) hold.
func (e *OTPChallengeError) Unwrap() error {
	return ErrOTPChallenge
}

func newOTPChallengeError(outcome models.OTPOutcome) error {
	return &OTPChallengeError{Outcome: outcome}
}
