package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"kineticmind/guidance/pkg/config"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("request completed", "status", 200)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "request completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v", entry["status"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("output = %q, want text format", buf.String())
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn entry missing")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(&config.LoggingConfig{Level: "loud"}, nil); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(&config.LoggingConfig{Format: "xml"}, nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNew_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("provider call",
		"api_key", "sk-abc123def456",
		"header", "Bearer sk-abc123def456",
	)

	out := buf.String()
	if strings.Contains(out, "abc123def456") {
		t.Errorf("credential leaked into log output: %s", out)
	}
}
