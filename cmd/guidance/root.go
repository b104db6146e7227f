package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "guidance",
	Short: "KineticMind Guidance - mood check-in relay for OpenAI",
	Long: `KineticMind Guidance is a small HTTP relay that converts mood check-ins
into structured coaching guidance via the OpenAI chat completions API.

It exposes a single POST endpoint that:
  - Accepts mood tags, free-text context, and a desired mental state
  - Builds a fixed coaching prompt pair and sends one chat completion
  - Relays the model's JSON guidance verbatim to the caller

The relay adds shared-secret authentication, permissive CORS for browser
clients, Prometheus metrics, and scheduled upstream health probing.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
