package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"kineticmind/guidance/pkg/config"
)

// Collector manages metric registration and provides a unified interface for
// recording metrics across the service. A nil *Collector is valid and all
// its methods are no-ops, so callers never need to guard recording calls.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	requestMetrics  *RequestMetrics
	providerMetrics *ProviderMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "kineticmind",
//		Subsystem: "guidance",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "kineticmind"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "guidance"
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		// LLM request latencies run 100ms to 30s
		cfg.RequestDurationBuckets = []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0}
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.providerMetrics = NewProviderMetrics(cfg, registry)

	return c
}

// RecordRequest records a completed guidance request.
//
// Status is one of "success", "invalid", "unauthorized", "upstream_error",
// "timeout", "error".
func (c *Collector) RecordRequest(status string, duration time.Duration) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.requestMetrics.RecordRequest(status, duration)
}

// RecordTokens records upstream token usage.
func (c *Collector) RecordTokens(promptTokens, completionTokens int) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.requestMetrics.RecordTokens(promptTokens, completionTokens)
}

// RecordProviderLatency records the latency for an upstream API call.
func (c *Collector) RecordProviderLatency(provider, model string, latencySeconds float64) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.providerMetrics.RecordLatency(provider, model, latencySeconds)
}

// UpdateProviderHealth updates the health gauge for a provider.
func (c *Collector) UpdateProviderHealth(provider string, healthy bool) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.providerMetrics.UpdateHealth(provider, healthy)
}

// RecordProviderError records an upstream error by type.
func (c *Collector) RecordProviderError(provider, errorType string) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.providerMetrics.RecordError(provider, errorType)
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}
