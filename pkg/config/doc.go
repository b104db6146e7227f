// Package config provides configuration management for the guidance gateway.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. Configuration is read once
// at process start and passed into the server by reference; handlers never
// read ambient environment state.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// If the file does not exist, LoadConfigWithEnvOverrides starts from the
// defaults, so the gateway can be configured from the environment alone.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention KM_SECTION_FIELD:
//
//   - KM_PROXY_LISTEN_ADDRESS overrides proxy.listen_address
//   - KM_SHARED_SECRET overrides auth.shared_secret
//   - KM_UPSTREAM_MODEL overrides upstream.model
//
// The upstream credential is also read from the conventional OPENAI_API_KEY
// variable. Environment variables always take precedence over file values.
//
// # Missing Credential
//
// A missing upstream API key is not a validation error. The gateway starts
// and every guidance request is answered with a server-error response until
// the key is provided. This keeps the failure visible at the HTTP surface
// instead of preventing startup.
//
// # Hot Reload
//
// When run with --watch, a fsnotify-based Watcher observes the configuration
// file and re-applies the shared secret on change. Everything else requires
// a restart.
package config
