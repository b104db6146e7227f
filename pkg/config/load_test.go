package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
proxy:
  listen_address: "0.0.0.0:9090"
  read_timeout: 10s
auth:
  shared_secret: "hunter2"
upstream:
  api_key: "sk-test"
  model: "gpt-4o"
  timeout: 30s
guidance:
  default_desired_state: "Clarity"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Proxy.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected listen address 0.0.0.0:9090, got %s", cfg.Proxy.ListenAddress)
	}
	if cfg.Proxy.ReadTimeout != 10*time.Second {
		t.Errorf("expected read timeout 10s, got %s", cfg.Proxy.ReadTimeout)
	}
	if cfg.Auth.SharedSecret != "hunter2" {
		t.Errorf("expected shared secret to be set, got %q", cfg.Auth.SharedSecret)
	}
	if cfg.Upstream.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.Upstream.Model)
	}
	if cfg.Guidance.DefaultDesiredState != "Clarity" {
		t.Errorf("expected default state Clarity, got %s", cfg.Guidance.DefaultDesiredState)
	}

	// Unset fields take defaults.
	if cfg.Proxy.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("expected default write timeout, got %s", cfg.Proxy.WriteTimeout)
	}
	if cfg.Upstream.BaseURL != DefaultUpstreamBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Temperature != DefaultUpstreamTemperature {
		t.Errorf("expected default temperature, got %v", cfg.Upstream.Temperature)
	}
	if cfg.Guidance.DefaultScore != DefaultScore {
		t.Errorf("expected default score, got %v", cfg.Guidance.DefaultScore)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "proxy: [not a mapping")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoadConfig_MissingAPIKeyIsNotAnError(t *testing.T) {
	path := writeConfigFile(t, "proxy:\n  listen_address: \"127.0.0.1:8080\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Upstream.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.Upstream.APIKey)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  model: "gpt-4o"
`)

	t.Setenv("KM_PROXY_LISTEN_ADDRESS", "127.0.0.1:7777")
	t.Setenv("KM_SHARED_SECRET", "env-secret")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("KM_UPSTREAM_TIMEOUT", "15s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Proxy.ListenAddress != "127.0.0.1:7777" {
		t.Errorf("env override not applied to listen address: %s", cfg.Proxy.ListenAddress)
	}
	if cfg.Auth.SharedSecret != "env-secret" {
		t.Errorf("env override not applied to shared secret: %q", cfg.Auth.SharedSecret)
	}
	if cfg.Upstream.APIKey != "sk-from-env" {
		t.Errorf("OPENAI_API_KEY not applied: %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("env override not applied to timeout: %s", cfg.Upstream.Timeout)
	}
	// File value survives where no env override exists.
	if cfg.Upstream.Model != "gpt-4o" {
		t.Errorf("file value lost: %s", cfg.Upstream.Model)
	}
}

func TestLoadConfigWithEnvOverrides_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-only")

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Proxy.ListenAddress != DefaultListenAddress {
		t.Errorf("expected default listen address, got %s", cfg.Proxy.ListenAddress)
	}
	if cfg.Upstream.APIKey != "sk-env-only" {
		t.Errorf("expected API key from env, got %q", cfg.Upstream.APIKey)
	}
}

func TestApplyDefaults_CORS(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	cors := cfg.Proxy.CORS
	if len(cors.AllowedOrigins) != 1 || cors.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected allowed origins: %v", cors.AllowedOrigins)
	}
	if len(cors.AllowedMethods) != 2 {
		t.Errorf("unexpected allowed methods: %v", cors.AllowedMethods)
	}
	if cors.MaxAge != 86400 {
		t.Errorf("expected max age 86400, got %d", cors.MaxAge)
	}

	found := false
	for _, h := range cors.AllowedHeaders {
		if h == "X-KM-Secret" {
			found = true
		}
	}
	if !found {
		t.Errorf("X-KM-Secret missing from allowed headers: %v", cors.AllowedHeaders)
	}
}
