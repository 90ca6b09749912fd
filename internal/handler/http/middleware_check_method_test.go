// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	})
	return router
}

func teapot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func TestCheckHTTPMethod(t *testing.T) {
	router := newCheckMethodRouter()
	check := CheckHTTPMethod(router, teapot)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered route is served", http.MethodGet, "/hello", http.StatusOK},
		{"registered subroute is served", http.MethodPost, "/auth/login", http.StatusAccepted},
		{"wrong method", http.MethodPost, "/hello", http.StatusTeapot},
		{"wrong method on subroute", http.MethodGet, "/auth/login", http.StatusTeapot},
		{"unknown path", http.MethodGet, "/missing", http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			check(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_AsMethodNotAllowed(t *testing.T) {
	router := newCheckMethodRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router, teapot))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/auth/login", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
