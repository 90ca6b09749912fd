package utils

import "strings"

// DefaultRedirect is the destination used whenever a "next" candidate is
// rejected.
const DefaultRedirect = "/"

// ResolveRedirect returns candidate only if it is a local absolute path:
// non-empty, starting with exactly one "/". Anything else, including
// protocol-relative "//host" and "/\host" (browsers normalise "\" to "/"),
// yields DefaultRedirect.
//
//	ResolveRedirect("/items")             // "/items"
//	ResolveRedirect("//evil.example")     // "/"
//	ResolveRedirect("http://evil.example") // "/"
func ResolveRedirect(candidate string) string {
	if candidate == "" || !strings.HasPrefix(candidate, "/") {
		return DefaultRedirect
	}
	if len(candidate) > 1 && (candidate[1] == '/' || candidate[1] == '\\') {
		return DefaultRedirect
	}
	return candidate
}
