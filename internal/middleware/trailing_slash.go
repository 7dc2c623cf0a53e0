package middleware

import (
	"net/http"
	"strings"
)

// TrimTrailingSlash serves "/users/" as "/users". It wraps the engine rather
// than being a gin middleware because gin matches the route before any
// middleware runs.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if len(p) <= 1 || !strings.HasSuffix(p, "/") {
			next.ServeHTTP(w, r)
			return
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = strings.TrimRight(p, "/")
		if r2.URL.Path == "" {
			r2.URL.Path = "/"
		}
		if r2.URL.RawPath != "" {
			r2.URL.RawPath = strings.TrimRight(r2.URL.RawPath, "/")
		}
		next.ServeHTTP(w, r2)
	})
}
