package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"kineticmind/guidance/pkg/proxy"
	"kineticmind/guidance/pkg/proxy/types"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a
// 500 error response. The panic and stack trace are logged but never exposed
// to clients.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				stack := debug.Stack()

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(stack),
				)

				proxy.WriteError(w, http.StatusInternalServerError, types.NewInternalError())
			}
		}()

		next.ServeHTTP(w, r)
	})
}
