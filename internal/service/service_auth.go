package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/models"
)

// authService is the concrete implementation of AuthService.
// It composes the credential store, the challenge manager and the token
// issuer into the signup, login and verification flows.
type authService struct {
	credentials CredentialStore
	challenges  OTPChallengeManager
	sessions    SessionTokenIssuer
}

// NewAuthService constructs an AuthService from its three components.
//
// The returned service is safe for concurrent use; all state lives in the
// user repository behind the components.
func NewAuthService(credentials CredentialStore, challenges OTPChallengeManager, sessions SessionTokenIssuer) AuthService {
	return &authService{
		credentials: credentials,
		challenges:  challenges,
		sessions:    sessions,
	}
}

// Signup creates an unverified account and issues its first challenge.
//
// Returns the created user or:
//   - ErrDuplicateAccount if the email is registered in any letter case.
//   - ErrNotificationDelivery (production only) if the code was not sent.
//     The account is kept; logging in issues a new code.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	user, err := a.credentials.Create(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		return models.User{}, err
	}

	if err = a.challenges.Issue(ctx, user); err != nil {
		return user, err
	}

	return user, nil
}

// Login checks the password and always issues a fresh challenge, whether or
// not the account was verified before.
//
// An unknown email and a wrong password both return ErrInvalidCredentials
// after one password comparison.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.credentials.FindByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.credentials.VerifyPassword(models.User{}, form.Password)
			log.Info().Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.credentials.VerifyPassword(user, form.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if err = a.challenges.Issue(ctx, user); err != nil {
		return user, err
	}

	return user, nil
}

// VerifyOTP completes the challenge and mints a session token for the now
// verified user. Failed outcomes are returned as *OTPChallengeError.
func (a *authService) VerifyOTP(ctx context.Context, form models.VerifyForm) (models.Token, error) {
	log := logger.FromContext(ctx)

	outcome, user, err := a.challenges.Verify(ctx, form.Email, form.Code)
	if err != nil {
		return models.Token{}, err
	}
	if outcome != models.OTPSuccess {
		log.Info().Str("outcome", outcome.String()).Msg("otp verification failed")
		return models.Token{}, newOTPChallengeError(outcome)
	}

	token, err := a.sessions.Issue(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Str("user_id", user.ID).Msg("error issuing session token")
		return models.Token{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user authenticated")
	return token, nil
}

func (a *authService) Authenticate(_ context.Context, tokenString string) (models.Identity, error) {
	return a.sessions.Verify(tokenString)
}
