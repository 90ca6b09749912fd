package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	require.NotNil(t, engine)
	assert.Len(t, engine.pages, len(pages))
}

func TestRender_SignupKeepsValuesButNotPasswords(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = engine.Render(rec, http.StatusBadRequest, PageSignup, TemplateData{
		Title: "Sign up",
		Error: "Passwords do not match.",
		Next:  "/items",
		Form:  models.SignupForm{Name: "Ana", Email: "ana@u.edu", Password: "secret1", ConfirmPassword: "secret2"},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `value="Ana"`)
	assert.Contains(t, body, `value="ana@u.edu"`)
	assert.Contains(t, body, `value="/items"`)
	assert.Contains(t, body, "Passwords do not match.")
	assert.NotContains(t, body, "secret1")
	assert.NotContains(t, body, "secret2")
}

func TestRender_EscapesInput(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = engine.Render(rec, http.StatusOK, PageLogin, TemplateData{
		Title: "Log in",
		Form:  models.LoginForm{Email: `"><script>alert(1)</script>`},
	})
	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestRender_LayoutShowsIdentity(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = engine.Render(rec, http.StatusOK, PageHome, TemplateData{
		Title:    "Home",
		Identity: models.Identity{ID: "u-1", Name: "Ana", Email: "ana@u.edu"},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "Signed in as Ana")
	assert.Contains(t, rec.Body.String(), `action="/auth/logout"`)

	rec = httptest.NewRecorder()
	require.NoError(t, engine.Render(rec, http.StatusOK, PageHome, TemplateData{Title: "Home"}))
	assert.NotContains(t, rec.Body.String(), "Signed in as")
}

func TestRender_UnknownPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = engine.Render(rec, http.StatusOK, "missing", TemplateData{})
	assert.Error(t, err)
	assert.Zero(t, rec.Body.Len())
}

func TestRender_ExecutionErrorWritesNothing(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	// signup reads .Form.Name, which a nil form cannot provide
	err = engine.Render(rec, http.StatusOK, PageSignup, TemplateData{})
	assert.Error(t, err)
	assert.Zero(t, rec.Body.Len())
}

func TestRender_NilEngine(t *testing.T) {
	var engine *Engine
	assert.Error(t, engine.Render(httptest.NewRecorder(), http.StatusOK, PageHome, TemplateData{}))
}
