package http

import (
	"net/http"

	"github.com/MKhiriev/go-lost-found/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "token"

// setSessionCookie stores token in a cookie that page scripts cannot read.
// The cookie lives as long as the token and is Secure in production.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie asks the client to drop the session cookie. The token
// itself stays valid until it expires.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}
