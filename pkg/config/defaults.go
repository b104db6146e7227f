package config

import "time"

// Default values for configuration fields.
const (
	// Proxy defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 90 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSMaxAge = 86400 // 24 hours

	// Upstream defaults
	DefaultUpstreamBaseURL        = "https://api.openai.com/v1"
	DefaultUpstreamModel          = "gpt-4o-mini"
	DefaultUpstreamTemperature    = 0.7
	DefaultUpstreamTimeout        = 60 * time.Second
	DefaultHealthCheckSchedule    = "@every 5m"

	// Guidance defaults
	DefaultDesiredState = "Calm"
	DefaultScore        = 5.0

	// Telemetry defaults
	DefaultLoggingLevel    = "info"
	DefaultLoggingFormat   = "json"
	DefaultMetricsEnabled  = true
	DefaultMetricsPath     = "/metrics"
	DefaultMetricsNamespace = "kineticmind"
	DefaultMetricsSubsystem = "guidance"
)

// DefaultCORSAllowedOrigins returns the default allowed origins.
func DefaultCORSAllowedOrigins() []string {
	return []string{"*"}
}

// DefaultCORSAllowedMethods returns the default allowed methods.
func DefaultCORSAllowedMethods() []string {
	return []string{"POST", "OPTIONS"}
}

// DefaultCORSAllowedHeaders returns the default allowed headers.
func DefaultCORSAllowedHeaders() []string {
	return []string{"Content-Type", "Authorization", "X-KM-Secret"}
}

// ApplyDefaults fills in default values for any zero-valued configuration
// fields. It is called automatically by LoadConfig.
func ApplyDefaults(cfg *Config) {
	// Proxy defaults
	if cfg.Proxy.ListenAddress == "" {
		cfg.Proxy.ListenAddress = DefaultListenAddress
	}
	if cfg.Proxy.ReadTimeout == 0 {
		cfg.Proxy.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Proxy.WriteTimeout == 0 {
		cfg.Proxy.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Proxy.IdleTimeout == 0 {
		cfg.Proxy.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Proxy.ShutdownTimeout == 0 {
		cfg.Proxy.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Proxy.MaxHeaderBytes == 0 {
		cfg.Proxy.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	// CORS defaults
	if len(cfg.Proxy.CORS.AllowedOrigins) == 0 {
		cfg.Proxy.CORS.AllowedOrigins = DefaultCORSAllowedOrigins()
	}
	if len(cfg.Proxy.CORS.AllowedMethods) == 0 {
		cfg.Proxy.CORS.AllowedMethods = DefaultCORSAllowedMethods()
	}
	if len(cfg.Proxy.CORS.AllowedHeaders) == 0 {
		cfg.Proxy.CORS.AllowedHeaders = DefaultCORSAllowedHeaders()
	}
	if cfg.Proxy.CORS.MaxAge == 0 {
		cfg.Proxy.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Upstream defaults
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultUpstreamBaseURL
	}
	if cfg.Upstream.Model == "" {
		cfg.Upstream.Model = DefaultUpstreamModel
	}
	if cfg.Upstream.Temperature == 0 {
		cfg.Upstream.Temperature = DefaultUpstreamTemperature
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = DefaultUpstreamTimeout
	}
	if cfg.Upstream.HealthCheckSchedule == "" {
		cfg.Upstream.HealthCheckSchedule = DefaultHealthCheckSchedule
	}

	// Guidance defaults
	if cfg.Guidance.DefaultDesiredState == "" {
		cfg.Guidance.DefaultDesiredState = DefaultDesiredState
	}
	if cfg.Guidance.DefaultScore == 0 {
		cfg.Guidance.DefaultScore = DefaultScore
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if !cfg.Telemetry.Metrics.Enabled {
		// An untouched metrics section means the user did not opt out.
		hasAnyConfig := cfg.Telemetry.Metrics.Path != "" ||
			cfg.Telemetry.Metrics.Namespace != "" ||
			cfg.Telemetry.Metrics.Subsystem != "" ||
			len(cfg.Telemetry.Metrics.RequestDurationBuckets) > 0

		if !hasAnyConfig {
			cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
		}
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

// NewDefaultConfig returns a configuration populated entirely with defaults.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
