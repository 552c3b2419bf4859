// Package middleware provides the HTTP middleware stack: request tracing,
// structured request logging, CORS, bearer API-key authentication, per-key
// rate limiting, request body capping, and per-request timeouts. Transport
// failures are reported as a closed set of coded errors, never as panics.
package middleware

import "net/http"

// System manages an ordered stack of HTTP middleware.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	wrappers []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.wrappers = append(s.wrappers, fn)
}

// Apply wraps the handler so the first registered middleware is outermost.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.wrappers) - 1; i >= 0; i-- {
		handler = s.wrappers[i](handler)
	}
	return handler
}
