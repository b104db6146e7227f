package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"kineticmind/guidance/pkg/config"
)

// RequestMetrics tracks metrics for guidance request processing.
//
// Metrics:
//   - kineticmind_guidance_requests_total: request count by status
//   - kineticmind_guidance_request_duration_seconds: request duration histogram
//   - kineticmind_guidance_request_tokens_total: tokens reported by the upstream
type RequestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	tokensTotal     *prometheus.CounterVec
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of guidance requests processed",
			},
			[]string{"status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of guidance requests in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"status"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_tokens_total",
				Help:      "Total number of tokens reported by the upstream",
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		rm.requestsTotal,
		rm.requestDuration,
		rm.tokensTotal,
	)

	return rm
}

// RecordRequest records a completed guidance request.
func (rm *RequestMetrics) RecordRequest(status string, duration time.Duration) {
	rm.requestsTotal.WithLabelValues(status).Inc()
	rm.requestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordTokens records token counts for prompt and completion.
func (rm *RequestMetrics) RecordTokens(promptTokens, completionTokens int) {
	if promptTokens > 0 {
		rm.tokensTotal.WithLabelValues("prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		rm.tokensTotal.WithLabelValues("completion").Add(float64(completionTokens))
	}
}
