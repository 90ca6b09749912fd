package service

import (
	"context"

	"github.com/MKhiriev/go-lost-found/models"
)

// CredentialStore creates accounts and checks passwords.
type CredentialStore interface {
	// Create registers an unverified account. Returns ErrDuplicateAccount
	// if the normalized email is already taken.
	Create(ctx context.Context, name, email, password string) (models.User, error)
	// FindByEmail looks the account up case-insensitively.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// VerifyPassword compares candidate with the stored hash. A zero user
	// performs an equivalent comparison and reports false.
	VerifyPassword(user models.User, candidate string) bool
}

// OTPChallengeManager issues and verifies one-time code challenges.
type OTPChallengeManager interface {
	// Issue replaces any outstanding challenge of user with a fresh code and
	// delivers it to the user's email.
	Issue(ctx context.Context, user models.User) error
	// Verify checks code against the challenge of the account with email.
	// On OTPSuccess the returned user has the challenge cleared and is
	// verified. Any other outcome is returned with a nil error.
	Verify(ctx context.Context, email, code string) (models.OTPOutcome, models.User, error)
}

// SessionTokenIssuer mints and validates session tokens.
type SessionTokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	// Verify returns the identity carried by a valid token, or
	// ErrTokenIsExpiredOrInvalid for any kind of failure.
	Verify(tokenString string) (models.Identity, error)
}

// AuthService drives the signup, login and code verification flows.
type AuthService interface {
	// Signup creates the account and issues its first challenge.
	Signup(ctx context.Context, form models.SignupForm) (models.User, error)
	// Login checks the password and issues a fresh challenge.
	Login(ctx context.Context, form models.LoginForm) (models.User, error)
	// VerifyOTP completes a challenge and returns a session token.
	VerifyOTP(ctx context.Context, form models.VerifyForm) (models.Token, error)
	// Authenticate resolves the identity carried by a session token.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
