package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

// AuthValidationService rejects malformed forms before they reach the
// wrapped AuthService. Errors wrap both ErrValidation and the validators
// sentinel describing the failing field.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthFormValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Signup(ctx, form)
}

func (v *AuthValidationService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Login(ctx, form)
}

func (v *AuthValidationService) VerifyOTP(ctx context.Context, form models.VerifyForm) (models.Token, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.VerifyOTP(ctx, form)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
