package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig contains configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins. Use ["*"] to allow all.
	AllowedOrigins []string

	// AllowedMethods is a list of allowed HTTP methods.
	AllowedMethods []string

	// AllowedHeaders is a list of allowed HTTP headers.
	AllowedHeaders []string

	// MaxAge is the maximum age in seconds for preflight cache.
	MaxAge int
}

// DefaultCORSConfig returns the default permissive CORS configuration.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-KM-Secret"},
		MaxAge:         86400,
	}
}

// CORSMiddleware adds cross-origin headers to every response and terminates
// preflight OPTIONS requests with an empty 200 body. The headers are set
// unconditionally, not negotiated per origin, so browser clients can call
// from anywhere.
//
// Example usage:
//
//	handler = CORSMiddleware(DefaultCORSConfig())(handler)
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	allowOrigin := strings.Join(config.AllowedOrigins, ",")
	allowMethods := strings.Join(config.AllowedMethods, ",")
	allowHeaders := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowOrigin)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Max-Age", maxAge)

			// Preflight gets the headers and nothing else. No auth, no
			// body processing.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
