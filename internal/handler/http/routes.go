package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every request passes, in order: panic recovery,
// real IP, trace id, access log, security headers, request timeout,
// compression and the authContext interceptor.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.secure.Handler)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "text/html", "text/plain"))
	router.Use(Chain(h.authContext))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/healthz", h.healthz)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/signup", h.showSignup)
			r.Post("/signup", h.signup)
			r.Get("/login", h.showLogin)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.Get("/otp", h.showOTP)
			r.Post("/verify-otp", h.verifyOTP)
		})
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(Chain(h.requireAuth))
		r.Get("/account", h.account)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
