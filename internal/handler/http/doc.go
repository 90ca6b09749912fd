// Package http implements the HTML transport layer of the application.
//
// It wires the chi router, the signup, login and one-time code pages, and
// the middleware every request passes through. The session cookie is
// resolved into a request identity by the authContext interceptor before
// any route handler runs; protected routes additionally pass requireAuth.
package http
