package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidForm:                  http.StatusBadRequest,
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrDuplicateAccount:     http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusBadRequest,
	service.ErrOTPChallenge:         http.StatusBadRequest,
	service.ErrNotificationDelivery: http.StatusInternalServerError,
}

// errorMessages is ordered: field specific messages come before the generic
// validation message they are wrapped together with.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrNameRequired, app.MsgNameRequired},
	{validators.ErrNameTooLong, app.MsgNameTooLong},
	{validators.ErrEmailRequired, app.MsgEmailRequired},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrPasswordRequired, app.MsgPasswordRequired},
	{validators.ErrPasswordTooShort, app.MsgPasswordTooShort},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrPasswordMismatch, app.MsgPasswordMismatch},
	{validators.ErrInvalidCode, app.MsgInvalidOrExpiredCode},
	{ErrInvalidForm, app.MsgInvalidDataProvided},
	{service.ErrValidation, app.MsgInvalidDataProvided},
	{service.ErrDuplicateAccount, app.MsgDuplicateAccount},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrOTPChallenge, app.MsgInvalidOrExpiredCode},
	{service.ErrNotificationDelivery, app.MsgNotificationDelivery},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message for err. Unknown errors
// get a generic message so that internals never reach the page.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}
