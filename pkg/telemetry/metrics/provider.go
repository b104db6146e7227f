package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"kineticmind/guidance/pkg/config"
)

// ProviderMetrics tracks upstream provider health and performance.
//
// Metrics:
//   - kineticmind_guidance_provider_health: health status (1=healthy, 0=unhealthy)
//   - kineticmind_guidance_provider_latency_seconds: upstream call latency
//   - kineticmind_guidance_provider_errors_total: upstream error count by type
type ProviderMetrics struct {
	health  *prometheus.GaugeVec
	latency *prometheus.HistogramVec
	errors  *prometheus.CounterVec
}

// NewProviderMetrics creates and registers provider metrics with the provided registry.
func NewProviderMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ProviderMetrics {
	pm := &ProviderMetrics{
		health: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_health",
				Help:      "Provider health status (1=healthy, 0=unhealthy)",
			},
			[]string{"provider"},
		),

		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_latency_seconds",
				Help:      "Upstream API call latency in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"provider", "model"},
		),

		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_errors_total",
				Help:      "Total number of upstream errors by type",
			},
			[]string{"provider", "error_type"},
		),
	}

	registry.MustRegister(
		pm.health,
		pm.latency,
		pm.errors,
	)

	return pm
}

// UpdateHealth updates the health gauge for a provider.
func (pm *ProviderMetrics) UpdateHealth(provider string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	pm.health.WithLabelValues(provider).Set(value)
}

// RecordLatency records the latency of an upstream call.
func (pm *ProviderMetrics) RecordLatency(provider, model string, latencySeconds float64) {
	pm.latency.WithLabelValues(provider, model).Observe(latencySeconds)
}

// RecordError records an upstream error.
//
// Common error types: "upstream_status", "timeout", "parse".
func (pm *ProviderMetrics) RecordError(provider, errorType string) {
	pm.errors.WithLabelValues(provider, errorType).Inc()
}
