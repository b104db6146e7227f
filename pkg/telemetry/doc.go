// Package telemetry provides observability for the guidance service.
//
// # Components
//
//   - logging: structured slog logging with credential redaction
//   - metrics: Prometheus metrics collection and exposition
//   - health: scheduled upstream reachability probes
package telemetry
