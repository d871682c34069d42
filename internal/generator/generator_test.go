package generator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/hyprsystem/internal/desktop"
	"github.com/opencode-ai/hyprsystem/internal/keybinds"
	"github.com/opencode-ai/hyprsystem/internal/templates"
	"github.com/opencode-ai/hyprsystem/internal/theme"
	"github.com/opencode-ai/hyprsystem/internal/workspace"
)

type fakeDesktop struct {
	reloadErr  error
	restartErr error
	reloads    int
	restarted  []string
}

func (f *fakeDesktop) Reload(ctx context.Context) error {
	f.reloads++
	return f.reloadErr
}

func (f *fakeDesktop) RestartService(ctx context.Context, name string) error {
	f.restarted = append(f.restarted, name)
	return f.restartErr
}

type fakeMonitors struct{}

func (fakeMonitors) Monitors(ctx context.Context) ([]desktop.Monitor, error) {
	return []desktop.Monitor{{Name: "DP-1"}, {Name: "DP-2"}}, nil
}

func loadRun(t *testing.T) Context {
	t.Helper()
	doc, err := theme.Load(filepath.Join("testdata", "theme-config.json"))
	require.NoError(t, err)
	binds, err := keybinds.Load(filepath.Join("testdata", "keybind-config.json"))
	require.NoError(t, err)
	return Context{Theme: doc, Keybinds: binds}
}

func TestGenerateAllBuiltins(t *testing.T) {
	out := t.TempDir()
	gen := New(templates.NewSource(), nil, nil, nil, Options{OutputDir: out})

	report := gen.GenerateAll(context.Background(), loadRun(t))

	require.NotEmpty(t, report.RunID)
	require.Empty(t, report.Failed())
	require.Equal(t, len(DefaultArtifacts()), report.Total)
	require.Equal(t, report.Total, report.Succeeded)

	for _, artifact := range DefaultArtifacts() {
		data, err := os.ReadFile(filepath.Join(out, artifact.Output))
		require.NoError(t, err, artifact.Name)
		if artifact.Kind == KindTemplate {
			require.NotContains(t, string(data), "${", artifact.Name)
		}
	}

	bindings, err := os.ReadFile(filepath.Join(out, "hypr", "configs", "bindings.conf"))
	require.NoError(t, err)
	require.Contains(t, string(bindings), "# Applications\n")

	workspaces, err := os.ReadFile(filepath.Join(out, "hypr", "configs", "workspaces.conf"))
	require.NoError(t, err)
	require.Contains(t, string(workspaces), "virtual-desktops {")
}

func TestGenerateAllMissingVariableContinues(t *testing.T) {
	userDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "kitty"+templates.Ext), []byte("font ${no_such_var}\n"), 0o644))

	out := t.TempDir()
	gen := New(templates.NewSource(userDir), nil, nil, nil, Options{OutputDir: out})
	report := gen.GenerateAll(context.Background(), loadRun(t))

	require.Equal(t, report.Total-1, report.Succeeded)
	failed := report.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, "kitty", failed[0].Artifact)
	require.ErrorIs(t, failed[0].Err, templates.ErrMissingVariable)
	require.Contains(t, failed[0].Error, "no_such_var")

	_, err := os.Stat(filepath.Join(out, "kitty", "kitty.conf"))
	require.True(t, os.IsNotExist(err), "failed artifact must not be written")

	// Artifacts after the failing one are still produced.
	_, err = os.Stat(filepath.Join(out, "waybar", "config.jsonc"))
	require.NoError(t, err)
}

func TestGenerateAllWithoutKeybinds(t *testing.T) {
	run := loadRun(t)
	run.Keybinds = nil

	gen := New(templates.NewSource(), nil, nil, nil, Options{OutputDir: t.TempDir()})
	report := gen.GenerateAll(context.Background(), run)

	failed := report.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, "bindings", failed[0].Artifact)
}

func TestGenerateAllReload(t *testing.T) {
	dt := &fakeDesktop{}
	gen := New(templates.NewSource(), nil, nil, dt, Options{
		OutputDir: t.TempDir(),
		Reload:    true,
		Services:  []string{"waybar", "dunst"},
	})

	report := gen.GenerateAll(context.Background(), loadRun(t))
	require.Empty(t, report.Warnings)
	require.Equal(t, 1, dt.reloads)
	require.Equal(t, []string{"waybar", "dunst"}, dt.restarted)
}

func TestGenerateAllReloadFailuresAreWarnings(t *testing.T) {
	dt := &fakeDesktop{reloadErr: errors.New("no hyprland"), restartErr: errors.New("not installed")}
	gen := New(templates.NewSource(), nil, nil, dt, Options{
		OutputDir: t.TempDir(),
		Reload:    true,
		Services:  []string{"waybar"},
	})

	report := gen.GenerateAll(context.Background(), loadRun(t))
	require.Equal(t, report.Total, report.Succeeded)
	require.Len(t, report.Warnings, 2)
	require.True(t, strings.HasPrefix(report.Warnings[1], "restart waybar failed"))
}

func TestGenerateAllNoReloadWhenDisabled(t *testing.T) {
	dt := &fakeDesktop{}
	gen := New(templates.NewSource(), nil, nil, dt, Options{OutputDir: t.TempDir()})

	gen.GenerateAll(context.Background(), loadRun(t))
	require.Zero(t, dt.reloads)
	require.Empty(t, dt.restarted)
}

func TestRegenerateWorkspaces(t *testing.T) {
	out := t.TempDir()
	gen := New(templates.NewSource(), nil, workspace.NewGenerator(fakeMonitors{}), nil, Options{OutputDir: out})

	doc := loadRun(t).Theme
	doc.SetWorkspaceMode(string(workspace.PerMonitor))
	require.NoError(t, gen.Regenerate(context.Background(), doc, workspace.ArtifactName))

	data, err := os.ReadFile(filepath.Join(out, "hypr", "configs", "workspaces.conf"))
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "# Workspace mode: per_monitor")
	require.Contains(t, content, "workspace = 6, monitor:DP-2, default:true")
	require.NotContains(t, content, "virtual-desktops")

	err = gen.Regenerate(context.Background(), doc, "nope")
	require.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestVariablesIncludeWorkspaceBlocks(t *testing.T) {
	gen := New(templates.NewSource(), nil, nil, nil, Options{})
	vars := gen.Variables(context.Background(), loadRun(t).Theme)

	require.Contains(t, vars, workspace.VarPluginConfig)
	require.Contains(t, vars, workspace.VarKeybindings)
	require.Contains(t, vars, workspace.VarMonitorAssignments)
	require.Equal(t, "#00ffff", vars["primary_accent"])
}

func TestOutputPath(t *testing.T) {
	gen := New(templates.NewSource(), nil, nil, nil, Options{OutputDir: "/tmp/out"})

	require.Equal(t, filepath.Join("/tmp/out", "dunst", "dunstrc"), gen.OutputPath(Artifact{Output: "dunst/dunstrc"}))
	require.Equal(t, "/etc/kitty.conf", gen.OutputPath(Artifact{Output: "/etc/kitty.conf"}))
}

func TestWaybarConfig(t *testing.T) {
	data, err := WaybarConfig(loadRun(t).Theme)
	require.NoError(t, err)

	var config map[string]any
	require.NoError(t, json.Unmarshal(data, &config))
	require.Equal(t, float64(34), config["height"])
	require.Equal(t, float64(10), config["margin-left"])
	require.Equal(t, []any{"clock"}, config["modules-center"])

	workspaces := config["hyprland/workspaces"].(map[string]any)
	require.Equal(t, "II", workspaces["format-icons"].(map[string]any)["2"])
	require.Len(t, workspaces["persistent_workspaces"], 5)

	require.Contains(t, string(data), "<big>", "HTML characters are not escaped")
}

func TestWaybarConfigMissingSection(t *testing.T) {
	doc, err := theme.Parse([]byte(`{"colors": {}}`))
	require.NoError(t, err)

	_, err = WaybarConfig(doc)
	require.Error(t, err)
}
