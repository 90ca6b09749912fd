package http

import "github.com/unrolled/secure"

const contentSecurityPolicy = "default-src 'self'; form-action 'self'; frame-ancestors 'none'; base-uri 'none'"

// newSecureMiddleware sets the security headers of every response.
// HTTPS redirects and HSTS are only enabled in production.
func newSecureMiddleware(production bool) *secure.Secure {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "same-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		IsDevelopment:         !production,
	}
	if production {
		opts.SSLRedirect = true
		opts.SSLProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}
		opts.STSSeconds = 31536000
		opts.STSIncludeSubdomains = true
	}

	return secure.New(opts)
}
