package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"kineticmind/guidance/pkg/cli"
	"kineticmind/guidance/pkg/config"
	"kineticmind/guidance/pkg/providers/openai"
	"kineticmind/guidance/pkg/server"
	"kineticmind/guidance/pkg/telemetry/health"
	"kineticmind/guidance/pkg/telemetry/logging"
	"kineticmind/guidance/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
	watch         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the guidance relay server",
	Long: `Start the guidance relay server with the specified configuration.

The server listens on the configured address and relays mood check-ins to
the OpenAI chat completions API, returning the model's structured guidance.

Examples:
  # Start with default config
  guidance run

  # Start with custom config
  guidance run --config /etc/kineticmind/config.yaml

  # Override listen address
  guidance run --listen 0.0.0.0:8080

  # Reload the shared secret when the config file changes
  guidance run --watch

  # Validate config without starting server
  guidance run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "reload config on file change (shared secret hot reload)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Proxy.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	config.SetConfig(cfg)

	// Initialize logging based on config
	if err := logging.Init(&cfg.Telemetry.Logging); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner(cfg)

	// Signal-aware context drives the server, prober and watcher.
	ctx := cli.SetupSignalHandler()

	// Create the upstream provider. The API key is read through the live
	// config so a reload can rotate it without a restart.
	providerCfg := cfg.Upstream.ProviderConfig()
	providerCfg.APIKeyFn = func() string {
		return config.GetConfig().Upstream.APIKey
	}
	provider, err := openai.NewProvider(providerCfg)
	if err != nil {
		return cli.NewConfigError("upstream", fmt.Sprintf("failed to create provider: %v", err))
	}
	defer provider.Close()
	fmt.Println("✓ Upstream provider initialized")

	// Metrics collector (no-op when telemetry.metrics.enabled is false)
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	// Scheduled upstream health probing
	prober := health.NewProber(provider, collector, cfg.Upstream.HealthCheckSchedule, cfg.Upstream.Timeout)
	if err := prober.Start(ctx); err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to start health prober: %w", err))
	}
	defer prober.Stop()

	// Optional config hot reload. Only the values read per request (shared
	// secret, API key, guidance defaults) take effect without a restart.
	if runFlags.watch {
		watcher, err := config.NewWatcher(cfgFile, slog.Default())
		if err != nil {
			return cli.NewConfigError("", fmt.Sprintf("failed to create config watcher: %v", err))
		}
		defer watcher.Close()

		go func() {
			if err := watcher.Watch(ctx, func() error {
				return config.ReloadConfig(cfgFile)
			}); err != nil {
				slog.Error("config watcher stopped", "error", err)
			}
		}()
		fmt.Println("✓ Config watcher started")
	}

	srv := server.NewServer(config.GetConfig, provider, collector)

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Proxy.ListenAddress)
	fmt.Printf("✓ Guidance endpoint: http://%s/v1/guidance\n", cfg.Proxy.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Proxy.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Proxy.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Start blocks until a shutdown signal, context cancellation or a
	// fatal server error.
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func printBanner(cfg *config.Config) {
	fmt.Printf("KineticMind Guidance v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	slog.Debug("upstream configured",
		"base_url", cfg.Upstream.BaseURL,
		"model", cfg.Upstream.Model,
		"api_key_set", cfg.Upstream.APIKey != "",
	)
	if cfg.Auth.SharedSecret == "" {
		slog.Warn("shared secret not configured, endpoint is unauthenticated")
	}
}
