// Package middleware holds the HTTP middleware shared by the GraphQL and
// REST transports.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. The first argument runs outermost:
// Chain(mw1, mw2)(h) is mw1(mw2(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
