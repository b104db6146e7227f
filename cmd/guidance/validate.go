package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"kineticmind/guidance/pkg/cli"
	"kineticmind/guidance/pkg/config"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load and validate the configuration file without starting the server.

The validate command applies environment variable overrides (OPENAI_API_KEY,
KM_SHARED_SECRET) the same way the run command does, then checks that all
required fields are present and well formed.

Examples:
  # Validate the default config
  guidance validate

  # Validate a specific config file
  guidance validate --config /etc/kineticmind/config.yaml

  # Machine-readable output
  guidance validate --format json`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationResult is the output of the validate command.
type validationResult struct {
	ConfigFile      string `json:"config_file"`
	Valid           bool   `json:"valid"`
	ListenAddress   string `json:"listen_address,omitempty"`
	Model           string `json:"model,omitempty"`
	APIKeySet       bool   `json:"api_key_set"`
	SharedSecretSet bool   `json:"shared_secret_set"`
	Error           string `json:"error,omitempty"`
}

func validateConfig(cmd *cobra.Command, args []string) error {
	result := validationResult{ConfigFile: cfgFile}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err == nil {
		err = config.Validate(cfg)
	}

	if err != nil {
		result.Error = err.Error()
	} else {
		result.Valid = true
		result.ListenAddress = cfg.Proxy.ListenAddress
		result.Model = cfg.Upstream.Model
		result.APIKeySet = cfg.Upstream.APIKey != ""
		result.SharedSecretSet = cfg.Auth.SharedSecret != ""
	}

	if validateFlags.format == string(cli.FormatJSON) {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if ferr := formatter.FormatTo(os.Stdout, result); ferr != nil {
			return cli.NewCommandError("validate", ferr)
		}
		if err != nil {
			return cli.NewConfigError("", err.Error())
		}
		return nil
	}

	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  Listen address: %s\n", result.ListenAddress)
	fmt.Printf("  Model: %s\n", result.Model)
	if !result.APIKeySet {
		fmt.Println("  Warning: OPENAI_API_KEY not set, requests will fail")
	}
	if !result.SharedSecretSet {
		fmt.Println("  Warning: shared secret not set, endpoint is unauthenticated")
	}
	return nil
}
