package models

import "time"

// OTPOutcome is the result of verifying a submitted one-time code.
type OTPOutcome int

const (
	// OTPSuccess means the code matched and had not expired.
	OTPSuccess OTPOutcome = iota
	// OTPNoActiveChallenge means the account had no outstanding code.
	OTPNoActiveChallenge
	// OTPExpired means the challenge expired, whether or not the code matched.
	OTPExpired
	// OTPMismatch means the code was wrong and the challenge still active.
	OTPMismatch
)

// String implements [fmt.Stringer].
func (o OTPOutcome) String() string {
	switch o {
	case OTPSuccess:
		return "success"
	case OTPNoActiveChallenge:
		return "no_active_challenge"
	case OTPExpired:
		return "expired"
	case OTPMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// OTPChallenge is an issued code together with its expiry instant.
type OTPChallenge struct {
	Code      string
	ExpiresAt time.Time
}
