package config

import (
	"time"

	"kineticmind/guidance/pkg/providers"
)

// Config is the root configuration structure for the guidance gateway.
// It is constructed once at process start and passed by reference into the
// server and handlers. Handling logic never reads ambient environment state.
type Config struct {
	// Proxy contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Proxy ProxyConfig `yaml:"proxy"`

	// Auth contains the shared-secret access control configuration.
	Auth AuthConfig `yaml:"auth"`

	// Upstream contains configuration for the OpenAI completion API.
	Upstream UpstreamConfig `yaml:"upstream"`

	// Guidance contains defaults and options for the guidance endpoint.
	Guidance GuidanceConfig `yaml:"guidance"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ProxyConfig contains configuration for the HTTP server.
type ProxyConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. This bounds the whole request including the upstream call.
	// Default: 90s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS configuration. The gateway is called from browser
// contexts, so every response (success and error) carries these headers.
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins. Use ["*"] to allow all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	// Default: ["POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers.
	// Default: ["Content-Type", "Authorization", "X-KM-Secret"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the maximum age (in seconds) for preflight request cache.
	// Default: 86400 (24 hours)
	MaxAge int `yaml:"max_age"`
}

// AuthConfig contains shared-secret access control configuration.
type AuthConfig struct {
	// SharedSecret is the static credential callers must echo in the
	// X-KM-Secret header. When empty, the secret gate is skipped entirely
	// and the endpoint is open. Typically sourced from KM_SHARED_SECRET.
	SharedSecret string `yaml:"shared_secret"`
}

// UpstreamConfig contains configuration for the OpenAI completion API.
type UpstreamConfig struct {
	// BaseURL is the base URL for the chat completions API.
	// Default: "https://api.openai.com/v1"
	BaseURL string `yaml:"base_url"`

	// APIKey is the bearer credential for the upstream API. Typically
	// sourced from OPENAI_API_KEY. A missing key is not a startup error:
	// every request fails with 500 before any upstream call is attempted.
	APIKey string `yaml:"api_key"`

	// Model is the fixed model identifier sent with every request.
	// Default: "gpt-4o-mini"
	Model string `yaml:"model"`

	// Temperature is the fixed sampling temperature.
	// Default: 0.7
	Temperature float64 `yaml:"temperature"`

	// Timeout is the maximum duration for a single upstream call. The
	// upstream call is a single attempt with no retry.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// HealthCheckSchedule is a cron expression for the scheduled upstream
	// reachability probe. Empty disables the probe.
	// Default: "@every 5m"
	HealthCheckSchedule string `yaml:"health_check_schedule"`
}

// ProviderConfig converts the upstream configuration into a provider
// configuration for the OpenAI adapter.
func (u UpstreamConfig) ProviderConfig() providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:    "openai",
		BaseURL: u.BaseURL,
		APIKey:  u.APIKey,
		Timeout: u.Timeout,
	}
}

// GuidanceConfig contains defaults and options for the guidance endpoint.
type GuidanceConfig struct {
	// DefaultDesiredState is used when the request omits desired_state.
	// Default: "Calm"
	DefaultDesiredState string `yaml:"default_desired_state"`

	// DefaultScore is used when the request omits score_before.
	// Default: 5
	DefaultScore float64 `yaml:"default_score"`

	// ValidateContent enables schema validation of the upstream content
	// before relay. Off by default: the content string is relayed verbatim,
	// and a malformed upstream response propagates to the caller.
	ValidateContent bool `yaml:"validate_content"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace.
	// Default: "kineticmind"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "guidance"
	Subsystem string `yaml:"subsystem"`

	// RequestDurationBuckets overrides the request duration histogram
	// buckets (seconds).
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets"`
}
