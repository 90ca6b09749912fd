package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their single
// outstanding one-time code challenge.
type UserRepository interface {
	// CreateUser inserts user. Returns [ErrEmailAlreadyExists] when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks up a user by normalized email.
	// Returns [ErrNoUserWasFound] when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// SaveChallenge replaces any outstanding challenge of the user with
	// challenge, writing both fields in one statement.
	SaveChallenge(ctx context.Context, userID string, challenge models.OTPChallenge) error
	// ConsumeChallenge clears the challenge and marks the user verified, but
	// only if code is still the stored code and has not expired at now.
	// Reports whether this call won the challenge.
	ConsumeChallenge(ctx context.Context, userID, code string, now time.Time) (bool, error)
	// ClearExpiredChallenges clears every challenge that expired before now
	// and returns how many were cleared.
	ClearExpiredChallenges(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator interprets driver errors for a particular database.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
