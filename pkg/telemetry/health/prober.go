package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"kineticmind/guidance/pkg/providers"
	"kineticmind/guidance/pkg/telemetry/metrics"
)

// Prober runs a scheduled reachability check against the upstream provider
// and publishes the result to the provider health gauge. The readiness
// endpoint reads the same health state, so a failing upstream drains the
// instance even when no guidance traffic is flowing.
type Prober struct {
	provider  providers.Provider
	collector *metrics.Collector
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
	mu        sync.Mutex
	running   bool
}

// NewProber creates a new upstream health prober. An empty schedule disables
// it; collector may be nil.
func NewProber(provider providers.Provider, collector *metrics.Collector, schedule string, timeout time.Duration) *Prober {
	return &Prober{
		provider:  provider,
		collector: collector,
		schedule:  schedule,
		timeout:   timeout,
		cron:      cron.New(),
		logger:    slog.Default().With("component", "health.prober"),
	}
}

// Start begins the scheduled probing. The schedule uses cron syntax,
// including descriptors like "@every 5m".
func (p *Prober) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.schedule == "" {
		p.logger.Info("health check schedule not configured, skipping prober")
		return nil
	}

	if _, err := cron.ParseStandard(p.schedule); err != nil {
		return fmt.Errorf("invalid health check schedule %q: %w", p.schedule, err)
	}

	if _, err := p.cron.AddFunc(p.schedule, func() {
		p.probe(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule health check: %w", err)
	}

	p.cron.Start()
	p.running = true

	p.logger.Info("health prober started",
		"provider", p.provider.GetName(),
		"schedule", p.schedule,
	)

	go func() {
		<-ctx.Done()
		p.Stop()
	}()

	return nil
}

// Stop halts the scheduled probing. In-flight probes run to completion.
func (p *Prober) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.cron.Stop()
	p.running = false
	p.logger.Info("health prober stopped")
}

// IsRunning reports whether the prober is active.
func (p *Prober) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Probe runs a single health check immediately, outside the schedule.
func (p *Prober) Probe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.provider.HealthCheck(probeCtx)
	p.collector.UpdateProviderHealth(p.provider.GetName(), err == nil)

	return err
}

// probe is the scheduled entry point. It logs instead of returning errors.
func (p *Prober) probe(ctx context.Context) {
	if err := p.Probe(ctx); err != nil {
		p.logger.Warn("upstream health check failed",
			"provider", p.provider.GetName(),
			"error", err,
		)
		return
	}

	p.logger.Debug("upstream health check succeeded",
		"provider", p.provider.GetName(),
	)
}
