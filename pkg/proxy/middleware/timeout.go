package middleware

import (
	"context"
	"net/http"
	"time"
)

// TimeoutMiddleware enforces a per-request timeout using context.WithTimeout.
// The cancelled context propagates into the upstream call, which surfaces
// the timeout through the provider error mapping. Handlers that have not
// yet written a response by then write into a dead connection, which the
// server discards.
//
// Example usage:
//
//	handler = TimeoutMiddleware(90 * time.Second)(handler)
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
