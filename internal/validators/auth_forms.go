package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted for field-level scoping. They are the Go field names
// of the form structs in package models.
const (
	FieldName            = "Name"
	FieldEmail           = "Email"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
	FieldCode            = "Code"
)

var formFields = map[string][]string{
	"SignupForm": {FieldName, FieldEmail, FieldPassword, FieldConfirmPassword},
	"LoginForm":  {FieldEmail, FieldPassword},
	"VerifyForm": {FieldEmail, FieldCode},
}

// AuthFormValidator validates the signup, login and verify forms using the
// `validate` struct tags declared on them.
type AuthFormValidator struct {
	validate *validator.Validate
}

func NewAuthFormValidator() Validator {
	return &AuthFormValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate accepts models.SignupForm, models.LoginForm and models.VerifyForm
// by value or pointer. With no fields every field of the form is checked.
//
// The first failing field decides the returned error.
func (v *AuthFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateForm(ctx, "SignupForm", value, fields)
	case *models.SignupForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(ctx, "SignupForm", *value, fields)

	case models.LoginForm:
		return v.validateForm(ctx, "LoginForm", value, fields)
	case *models.LoginForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(ctx, "LoginForm", *value, fields)

	case models.VerifyForm:
		return v.validateForm(ctx, "VerifyForm", value, fields)
	case *models.VerifyForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(ctx, "VerifyForm", *value, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateForm(ctx context.Context, formName string, form any, fields []string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, form)
	} else {
		for _, f := range fields {
			if !slices.Contains(formFields[formName], f) {
				return ErrUnknownField
			}
		}
		err = v.validate.StructPartialCtx(ctx, form, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	fieldErr := validationErrors[0]
	return fmt.Errorf("field %s: %w", fieldErr.StructField(), toSentinel(fieldErr))
}

func toSentinel(fieldErr validator.FieldError) error {
	switch fieldErr.StructField() {
	case FieldName:
		if fieldErr.Tag() == "max" {
			return ErrNameTooLong
		}
		return ErrNameRequired
	case FieldEmail:
		if fieldErr.Tag() == "required" {
			return ErrEmailRequired
		}
		return ErrInvalidEmail
	case FieldPassword:
		switch fieldErr.Tag() {
		case "required":
			return ErrPasswordRequired
		case "min":
			return ErrPasswordTooShort
		default:
			return ErrPasswordTooLong
		}
	case FieldConfirmPassword:
		return ErrPasswordMismatch
	case FieldCode:
		return ErrInvalidCode
	default:
		return ErrUnknownField
	}
}
