package cli

import (
	"github.com/opencode-ai/hyprsystem/internal/config"
	"github.com/opencode-ai/hyprsystem/internal/desktop"
	"github.com/opencode-ai/hyprsystem/internal/generator"
	"github.com/opencode-ai/hyprsystem/internal/keybinds"
	"github.com/opencode-ai/hyprsystem/internal/templates"
	"github.com/opencode-ai/hyprsystem/internal/theme"
	"github.com/opencode-ai/hyprsystem/internal/workspace"
)

// desktopExecutor runs hyprctl, pkill, service and notify-send commands.
// Tests replace it.
var desktopExecutor desktop.Executor = desktop.LocalExecutor{}

func newDesktopClient() *desktop.Client {
	return desktop.NewClient(desktopExecutor)
}

func templateSource(cfg *config.Config) *templates.Source {
	return templates.NewSource(templates.TemplateSearchPaths(cfg.TemplateDir())...)
}

func loadKeybinds(cfg *config.Config) (*keybinds.Config, error) {
	return keybinds.Load(cfg.KeybindConfigPath())
}

func hotkeyFormatter(cfg *config.Config) keybinds.Formatter {
	return keybinds.Formatter{Legacy: cfg.Hotkeys.LegacyFormat}
}

func newGenerator(cfg *config.Config, client *desktop.Client) (*generator.Generator, error) {
	manifest, err := generator.LoadManifest(cfg.ArtifactManifestPath())
	if err != nil {
		return nil, err
	}
	return generator.New(
		templateSource(cfg),
		manifest,
		workspace.NewGenerator(client),
		client,
		generator.Options{
			OutputDir: cfg.Paths.OutputDir,
			Reload:    cfg.Reload.Enabled,
			Services:  cfg.Reload.Services,
		},
	), nil
}

func newSwitcher(cfg *config.Config) (*workspace.Switcher, error) {
	client := newDesktopClient()
	gen, err := newGenerator(cfg, client)
	if err != nil {
		return nil, err
	}
	return workspace.NewSwitcher(theme.NewStore(cfg.ThemeConfigPath()), workspace.SwitcherOptions{
		Regenerator: gen,
		Desktop:     client,
		Reload:      cfg.Reload.Enabled,
		Notify:      cfg.Reload.Notify,
	}), nil
}
