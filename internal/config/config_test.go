package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cfg := DefaultConfig()
	require.Equal(t, filepath.Join("/tmp/xdg", "hypr-system"), cfg.Paths.ConfigDir)
	require.Equal(t, "/tmp/xdg", cfg.Paths.OutputDir)
	require.True(t, cfg.Reload.Enabled)
	require.Equal(t, []string{"waybar", "dunst"}, cfg.Reload.Services)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadSearchesGivenDirFirst(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)

	cfg, err = Load("", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level, "a dir without config.yaml falls back to defaults")
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "custom.yaml")

	yaml := `paths:
  config_dir: /srv/hypr
  output_dir: /srv/out
logging:
  level: DEBUG
  format: json
reload:
  enabled: false
  services: [waybar, " ", swaync]
hotkeys:
  legacy_format: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/hypr", cfg.Paths.ConfigDir)
	require.Equal(t, "/srv/out", cfg.Paths.OutputDir)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.False(t, cfg.Reload.Enabled)
	require.Equal(t, []string{"waybar", "swaync"}, cfg.Reload.Services)
	require.True(t, cfg.Hotkeys.LegacyFormat)

	require.Equal(t, "/srv/hypr/core/theme-config.json", cfg.ThemeConfigPath())
	require.Equal(t, "/srv/hypr/core/keybind-config.json", cfg.KeybindConfigPath())
	require.Equal(t, "/srv/hypr/templates", cfg.TemplateDir())
	require.Equal(t, "/srv/hypr/artifacts.yaml", cfg.ArtifactManifestPath())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HYPRSYSTEM_LOGGING_LEVEL", "info")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateRejectsFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	require.Error(t, cfg.Validate())
}

func TestTemplateDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.TemplateDir = "/opt/templates"
	require.Equal(t, "/opt/templates", cfg.TemplateDir())
}
