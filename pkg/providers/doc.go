// Package providers defines the provider abstraction the guidance handler
// uses to reach the upstream completion API, plus the shared HTTP base
// adapter with connection pooling, timeout handling, and health tracking.
//
// # Design
//
//   - Provider: interface consumed by handlers (SendCompletion, HealthCheck)
//   - HTTPProvider: embeddable base with a pooled http.Client
//   - Typed errors: ProviderError (non-success upstream status, body text
//     preserved for relay), TimeoutError, ParseError, ConfigError
//
// Every upstream call is a single attempt. The gateway never retries: a
// failed call is terminal for the inbound request and is surfaced once.
//
// Concrete adapters live in subpackages (see providers/openai).
package providers
