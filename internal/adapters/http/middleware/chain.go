package middleware

import (
	"net/http"
	"slices"
)

// Func wraps a handler with cross-cutting behavior.
type Func = func(http.Handler) http.Handler

// Chain composes fns so that the first one sees the request first:
// Chain(a, b, c)(h) is a(b(c(h))).
func Chain(fns ...Func) Func {
	return func(h http.Handler) http.Handler {
		for _, fn := range slices.Backward(fns) {
			h = fn(h)
		}
		return h
	}
}
