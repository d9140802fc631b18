package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var k = koanf.New(".")

// flagKeys maps CLI flag names onto config keys so flags, env vars and the
// config file all land in one namespace. Flags without an entry stay out of
// the config (e.g. --config itself).
var flagKeys = map[string]string{
	"quiet":           "quiet",
	"output":          "report.output",
	"console":         "report.console",
	"fail-on-issues":  "report.fail-on-issues",
	"severity-format": "report.severity-format",
	"allow-empty":     "engine.allow-empty",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssreport.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Unchanged flags defer to whatever an
	// earlier provider already set for their key.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (CSSREPORT_* prefix)
	if err := k.Load(env.Provider("CSSREPORT_", ".", func(s string) string {
		// CSSREPORT_REPORT_OUTPUT -> report.output
		// CSSREPORT_QUIET -> quiet
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSREPORT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}
