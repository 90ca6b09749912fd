package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
)

// authContext resolves the request identity from the session cookie.
//
// It never rejects a request. A missing cookie leaves the request anonymous.
// A cookie that fails verification (malformed, wrong signature, expired) is
// treated exactly like a missing one, and the client is asked to drop it.
// On success the identity is stored under [utils.IdentityCtxKey].
func (h *Handler) authContext(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return r, true
	}

	identity, err := h.services.AuthService.Authenticate(r.Context(), cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("session cookie rejected, continuing anonymously")
		h.clearSessionCookie(w)
		return r, true
	}

	return r.WithContext(utils.ContextWithIdentity(r.Context(), identity)), true
}

// requireAuth guards routes that need a signed-in user. Anonymous requests
// are redirected to the login page with the original URL as next.
func (h *Handler) requireAuth(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	if _, ok := utils.GetIdentityFromContext(r.Context()); ok {
		return r, true
	}

	http.Redirect(w, r, "/auth/login?"+url.Values{"next": {r.URL.RequestURI()}}.Encode(), http.StatusSeeOther)
	return nil, false
}
