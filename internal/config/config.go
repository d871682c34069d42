// Package config loads hyprsystem settings from config.yaml, the environment
// and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (HYPRSYSTEM_LOGGING_LEVEL, ...).
const EnvPrefix = "HYPRSYSTEM"

// Config is the application configuration.
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
	Reload  ReloadConfig  `mapstructure:"reload"`
	Hotkeys HotkeysConfig `mapstructure:"hotkeys"`
}

// PathsConfig locates inputs and outputs.
type PathsConfig struct {
	// ConfigDir holds core/theme-config.json, core/keybind-config.json and templates/.
	ConfigDir string `mapstructure:"config_dir"`

	// TemplateDir overrides <config_dir>/templates.
	TemplateDir string `mapstructure:"template_dir"`

	// OutputDir is the root that artifact paths are relative to.
	OutputDir string `mapstructure:"output_dir"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReloadConfig controls what happens after a generation run.
type ReloadConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Services []string `mapstructure:"services"`
	Notify   bool     `mapstructure:"notify"`
}

// HotkeysConfig controls hotkey display.
type HotkeysConfig struct {
	// LegacyFormat switches to ordered substring replacement of key names.
	LegacyFormat bool `mapstructure:"legacy_format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			ConfigDir: DefaultConfigDir(),
			OutputDir: userConfigRoot(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Reload: ReloadConfig{
			Enabled:  true,
			Services: []string{"waybar", "dunst"},
			Notify:   true,
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/hypr-system (or ~/.config/hypr-system).
func DefaultConfigDir() string {
	return filepath.Join(userConfigRoot(), "hypr-system")
}

func userConfigRoot() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Load reads configuration. An empty path searches searchDirs, then the
// default config dir, for config.yaml; a missing file there is not an error.
func Load(path string, searchDirs ...string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, defaults)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(expandHome(path))
	} else {
		v.SetConfigName("config")
		for _, dir := range searchDirs {
			if dir = strings.TrimSpace(dir); dir != "" {
				v.AddConfigPath(expandHome(dir))
			}
		}
		v.AddConfigPath(defaults.Paths.ConfigDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("paths.config_dir", cfg.Paths.ConfigDir)
	v.SetDefault("paths.template_dir", cfg.Paths.TemplateDir)
	v.SetDefault("paths.output_dir", cfg.Paths.OutputDir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("reload.enabled", cfg.Reload.Enabled)
	v.SetDefault("reload.services", cfg.Reload.Services)
	v.SetDefault("reload.notify", cfg.Reload.Notify)
	v.SetDefault("hotkeys.legacy_format", cfg.Hotkeys.LegacyFormat)
}

func (c *Config) normalize() {
	c.Paths.ConfigDir = expandHome(strings.TrimSpace(c.Paths.ConfigDir))
	c.Paths.TemplateDir = expandHome(strings.TrimSpace(c.Paths.TemplateDir))
	c.Paths.OutputDir = expandHome(strings.TrimSpace(c.Paths.OutputDir))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	services := make([]string, 0, len(c.Reload.Services))
	for _, svc := range c.Reload.Services {
		if svc = strings.TrimSpace(svc); svc != "" {
			services = append(services, svc)
		}
	}
	c.Reload.Services = services
}

// Validate checks the configuration for obviously wrong values.
func (c *Config) Validate() error {
	if c.Paths.ConfigDir == "" {
		return errors.New("paths.config_dir is required")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir is required")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// ThemeConfigPath returns the theme document location.
func (c *Config) ThemeConfigPath() string {
	return filepath.Join(c.Paths.ConfigDir, "core", "theme-config.json")
}

// KeybindConfigPath returns the keybinding document location.
func (c *Config) KeybindConfigPath() string {
	return filepath.Join(c.Paths.ConfigDir, "core", "keybind-config.json")
}

// TemplateDir returns the user template directory.
func (c *Config) TemplateDir() string {
	if c.Paths.TemplateDir != "" {
		return c.Paths.TemplateDir
	}
	return filepath.Join(c.Paths.ConfigDir, "templates")
}

// ArtifactManifestPath returns the optional artifact manifest location.
func (c *Config) ArtifactManifestPath() string {
	return filepath.Join(c.Paths.ConfigDir, "artifacts.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
