package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/MKhiriev/go-lost-found/web"
)

// Page names accepted by Render.
const (
	PageSignup = "signup"
	PageLogin  = "login"
	PageOTP    = "otp"
	PageHome   = "home"
	PageError  = "error"
)

var pages = []string{PageSignup, PageLogin, PageOTP, PageHome, PageError}

// Engine renders HTML pages. Every page is parsed together with the shared
// layout into its own template set.
type Engine struct {
	pages map[string]*template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title    string
	Identity models.Identity
	Error    string
	Notice   string
	// Next is the sanitized post-auth destination carried through forms.
	Next string
	// Form holds the previously submitted values of the page's form.
	// Password fields are never echoed back.
	Form any
	Data any
}

// Authenticated reports whether the page is rendered for a signed-in user.
func (d TemplateData) Authenticated() bool {
	return !d.Identity.IsAnonymous()
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	e := &Engine{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tpl, err := template.New("layout.html").ParseFS(web.Templates, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing page %q: %w", page, err)
		}
		e.pages[page] = tpl
	}
	return e, nil
}

// Render executes page with data and writes it with status.
// Nothing is written to w if execution fails.
func (e *Engine) Render(w http.ResponseWriter, status int, page string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	tpl, ok := e.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("error rendering page %q: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
