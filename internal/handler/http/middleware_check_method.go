// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to register as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers with notFound, so a caller using
// an unsupported method cannot tell that the path exists. Routes of mounted
// subrouters (e.g. /auth/login) are matched by their full pattern as
// reported by [chi.Walk].
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		registered := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && method == r.Method {
				registered = true
			}
			return nil
		})

		if !registered {
			notFound(w, r)
			return
		}

		// The method is registered, delegate to the router's normal pipeline.
		router.ServeHTTP(w, r)
	}
}
