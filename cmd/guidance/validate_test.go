package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateCommandExists(t *testing.T) {
	if validateCmd == nil {
		t.Fatal("validateCmd is nil")
	}
	if validateCmd.Use != "validate" {
		t.Errorf("validateCmd.Use = %q, want %q", validateCmd.Use, "validate")
	}
	if validateCmd.RunE == nil {
		t.Error("validateCmd.RunE should not be nil")
	}
}

func TestValidateConfigValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
proxy:
  listen_address: "127.0.0.1:8787"
upstream:
  model: "gpt-4o-mini"
auth:
  shared_secret: "test-secret"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	origCfgFile := cfgFile
	origFormat := validateFlags.format
	defer func() {
		cfgFile = origCfgFile
		validateFlags.format = origFormat
	}()
	cfgFile = path
	validateFlags.format = "text"

	if err := validateConfig(validateCmd, nil); err != nil {
		t.Errorf("validateConfig() error = %v, want nil", err)
	}
}

func TestValidateConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
proxy:
  listen_address: "not-a-valid-address"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	origCfgFile := cfgFile
	defer func() { cfgFile = origCfgFile }()
	cfgFile = path

	if err := validateConfig(validateCmd, nil); err == nil {
		t.Error("validateConfig() should fail for an invalid listen address")
	}
}

func TestValidateConfigMissingFileUsesDefaults(t *testing.T) {
	origCfgFile := cfgFile
	defer func() { cfgFile = origCfgFile }()
	cfgFile = filepath.Join(t.TempDir(), "does-not-exist.yaml")

	// A missing config file falls back to defaults, which validate cleanly.
	if err := validateConfig(validateCmd, nil); err != nil {
		t.Errorf("validateConfig() error = %v, want nil", err)
	}
}
