package http

import "net/http"

// Interceptor inspects a request before it reaches the route handler.
//
// It returns the request to continue with (possibly carrying a modified
// context) and true, or false after it has written a response itself.
type Interceptor func(w http.ResponseWriter, r *http.Request) (*http.Request, bool)

// Chain runs interceptors in order and then next. The first interceptor
// returning false short-circuits the rest.
func Chain(interceptors ...Interceptor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, intercept := range interceptors {
				var proceed bool
				if r, proceed = intercept(w, r); !proceed {
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
