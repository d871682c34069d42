// Package cli implements the hyprsystem command line.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/config"
	"github.com/opencode-ai/hyprsystem/internal/logging"
)

var (
	// global flags
	cfgFile    string
	configDir  string
	outputDir  string
	logLevel   string
	logFormat  string
	jsonOutput bool
	noReload   bool
	noProgress bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hyprsystem",
	Short: "Generate Hyprland desktop configuration from a central theme",
	Long: `hyprsystem renders Hyprland, Waybar, Rofi, Dunst and Kitty configuration
from core/theme-config.json and core/keybind-config.json.

Run without a subcommand to generate every configuration file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runGenerate,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: <config-dir>/config.yaml)")
	flags.StringVar(&configDir, "config-dir", "", "directory holding core/ and templates/")
	flags.StringVar(&outputDir, "output-dir", "", "root directory for generated files (default: ~/.config)")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.BoolVar(&jsonOutput, "json", false, "write machine-readable JSON output")
	flags.BoolVar(&noReload, "no-reload", false, "skip reloading Hyprland and restarting services")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, configDir)
	if err != nil {
		return err
	}

	if strings.TrimSpace(configDir) != "" {
		cfg.Paths.ConfigDir = configDir
	}
	if strings.TrimSpace(outputDir) != "" {
		cfg.Paths.OutputDir = outputDir
	}
	if strings.TrimSpace(logLevel) != "" {
		cfg.Logging.Level = logLevel
	}
	if strings.TrimSpace(logFormat) != "" {
		cfg.Logging.Format = logFormat
	}
	if noReload {
		cfg.Reload.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	appConfig = cfg
	return nil
}
