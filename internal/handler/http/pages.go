package http

import (
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/view"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageHome, view.TemplateData{Title: "Lost & Found"})
}

// account is the signed-in landing page; it sits behind requireAuth.
func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageHome, view.TemplateData{Title: "Your account"})
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, view.PageError, view.TemplateData{
		Title: "Page not found",
		Error: app.MsgNotFound,
	})
}

// render fills in the request identity and writes page. A template failure
// degrades to a plain 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.TemplateData) {
	data.Identity, _ = utils.GetIdentityFromContext(r.Context())

	if err := h.views.Render(w, status, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
