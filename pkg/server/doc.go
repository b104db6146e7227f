// Package server ties together the guidance handlers, middleware chain, and
// HTTP server lifecycle.
//
// # Routes
//
//   - POST /v1/guidance - structured guidance completion
//   - GET /health - liveness probe (always 200 while running)
//   - GET /ready - readiness probe (checks upstream provider health)
//   - GET /metrics - Prometheus metrics (when enabled)
//
// # Middleware Chain
//
// Requests pass through the following middleware (innermost to outermost):
//  1. Timeout: enforces a per-request deadline
//  2. Secret: shared-secret authentication, skipped when unconfigured
//  3. CORS: permissive cross-origin headers, terminates preflight
//  4. RequestID: unique ID for log correlation
//  5. Logging: structured request logging
//  6. Recovery: panic recovery returning 500
//
// # Graceful Shutdown
//
// The server shuts down on SIGTERM or SIGINT, or when the start context is
// cancelled: it stops accepting connections, waits up to the configured
// shutdown timeout for in-flight requests, then closes.
package server
