package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/view"
	"github.com/MKhiriev/go-lost-found/models"
)

const (
	titleSignup = "Sign up"
	titleLogin  = "Log in"
	titleOTP    = "Enter your code"
)

func (h *Handler) showSignup(w http.ResponseWriter, r *http.Request) {
	next := utils.ResolveRedirect(r.URL.Query().Get("next"))
	if h.redirectIfAuthenticated(w, r, next) {
		return
	}

	h.render(w, r, http.StatusOK, view.PageSignup, view.TemplateData{
		Title: titleSignup,
		Next:  next,
		Form:  models.SignupForm{},
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderFormError(w, r, view.PageSignup, titleSignup, "", models.SignupForm{}, ErrInvalidForm)
		return
	}

	next := utils.ResolveRedirect(r.PostFormValue("next"))
	form := models.SignupForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		Next:            next,
	}

	user, err := h.services.AuthService.Signup(ctx, form)
	if err != nil {
		log.Info().Err(err).Msg("signup rejected")
		h.renderFormError(w, r, view.PageSignup, titleSignup, next, models.SignupForm{Name: form.Name, Email: form.Email}, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	http.Redirect(w, r, otpLocation(user.Email, next), http.StatusSeeOther)
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	next := utils.ResolveRedirect(r.URL.Query().Get("next"))
	if h.redirectIfAuthenticated(w, r, next) {
		return
	}

	h.render(w, r, http.StatusOK, view.PageLogin, view.TemplateData{
		Title: titleLogin,
		Next:  next,
		Form:  models.LoginForm{},
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderFormError(w, r, view.PageLogin, titleLogin, "", models.LoginForm{}, ErrInvalidForm)
		return
	}

	next := utils.ResolveRedirect(r.PostFormValue("next"))
	form := models.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Next:     next,
	}

	user, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		log.Info().Err(err).Msg("login rejected")
		h.renderFormError(w, r, view.PageLogin, titleLogin, next, models.LoginForm{Email: form.Email}, err)
		return
	}

	http.Redirect(w, r, otpLocation(user.Email, next), http.StatusSeeOther)
}

// logout only drops the client-held cookie; the token stays valid until it
// expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, utils.DefaultRedirect, http.StatusSeeOther)
}

func (h *Handler) showOTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	next := utils.ResolveRedirect(query.Get("next"))

	h.render(w, r, http.StatusOK, view.PageOTP, view.TemplateData{
		Title:  titleOTP,
		Notice: app.MsgCodeSent,
		Next:   next,
		Form:   models.VerifyForm{Email: strings.TrimSpace(query.Get("email"))},
		Data:   formatTTL(h.otpTTL),
	})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderFormError(w, r, view.PageOTP, titleOTP, "", models.VerifyForm{}, ErrInvalidForm)
		return
	}

	next := utils.ResolveRedirect(r.PostFormValue("next"))
	form := models.VerifyForm{
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Code:  strings.TrimSpace(r.PostFormValue("code")),
		Next:  next,
	}

	token, err := h.services.AuthService.VerifyOTP(ctx, form)
	if err != nil {
		var challengeErr *service.OTPChallengeError
		if errors.As(err, &challengeErr) {
			log.Info().Str("outcome", challengeErr.Outcome.String()).Msg("otp rejected")
		} else {
			log.Info().Err(err).Msg("otp rejected")
		}
		h.renderFormError(w, r, view.PageOTP, titleOTP, next, models.VerifyForm{Email: form.Email}, err)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// redirectIfAuthenticated sends signed-in users straight to next.
func (h *Handler) redirectIfAuthenticated(w http.ResponseWriter, r *http.Request, next string) bool {
	if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
		return false
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
	return true
}

// renderFormError re-renders page with the message and status mapped from err.
func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, page, title, next string, form any, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("request failed")
	}

	data := view.TemplateData{
		Title: title,
		Error: messageFromError(err),
		Next:  next,
		Form:  form,
	}
	if page == view.PageOTP {
		data.Data = formatTTL(h.otpTTL)
	}
	if next == "" {
		data.Next = utils.DefaultRedirect
	}

	h.render(w, r, status, page, data)
}

func otpLocation(email, next string) string {
	return "/auth/otp?" + url.Values{"email": {email}, "next": {next}}.Encode()
}

func formatTTL(d time.Duration) string {
	if d > 0 && d%time.Minute == 0 {
		if minutes := int(d / time.Minute); minutes != 1 {
			return fmt.Sprintf("%d minutes", minutes)
		}
		return "1 minute"
	}
	return d.String()
}
