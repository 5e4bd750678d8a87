package dataloader

import "net/http"

// Middleware creates an HTTP middleware that builds a fresh set of loaders
// for each request and stores it in the request context. Per-request
// lifetime means the cache never serves stale users across requests.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
