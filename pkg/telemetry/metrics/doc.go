// Package metrics provides Prometheus instrumentation for the guidance
// service: request counts and durations, upstream latency and errors, and
// provider health. All metrics live in a collector-owned registry so tests
// can assert on them without global state.
package metrics
