package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"kineticmind/guidance/pkg/proxy"
	"kineticmind/guidance/pkg/proxy/types"
)

// SecretHeader is the HTTP header carrying the shared secret.
const SecretHeader = "X-KM-Secret"

// SecretMiddleware enforces the shared-secret gate. When a secret is
// configured, POST requests must carry the secret header with exactly the
// configured value; otherwise the response is 401. When no secret is
// configured the gate is skipped entirely and all requests pass.
//
// Only POST requests are gated: the guidance API is POST-only, so other
// methods fall through to the method gate and are rejected there, and the
// read-only health and metrics endpoints stay reachable by probes.
//
// The secretFn indirection lets the configured value be swapped at runtime
// by a config reload without rebuilding the middleware chain.
//
// Example usage:
//
//	handler = SecretMiddleware(func() string { return cfg.Auth.SharedSecret })(handler)
func SecretMiddleware(secretFn func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			secret := secretFn()
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(SecretHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				slog.WarnContext(r.Context(), "shared secret mismatch",
					"request_id", GetRequestID(r.Context()),
					"remote_addr", r.RemoteAddr,
				)
				proxy.WriteError(w, http.StatusUnauthorized, types.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
