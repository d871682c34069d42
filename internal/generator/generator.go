package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/hyprsystem/internal/keybinds"
	"github.com/opencode-ai/hyprsystem/internal/logging"
	"github.com/opencode-ai/hyprsystem/internal/templates"
	"github.com/opencode-ai/hyprsystem/internal/theme"
	"github.com/opencode-ai/hyprsystem/internal/workspace"
)

var errKeybindsNotLoaded = errors.New("keybind config not loaded")

// Desktop is the subset of desktop actions run after generation.
type Desktop interface {
	Reload(ctx context.Context) error
	RestartService(ctx context.Context, name string) error
}

// Options configures a Generator.
type Options struct {
	// OutputDir is the root for relative artifact outputs.
	OutputDir string

	// Reload runs `hyprctl reload` and restarts Services after GenerateAll.
	Reload   bool
	Services []string
}

// Context holds the documents for one generation run.
type Context struct {
	Theme    *theme.Document
	Keybinds *keybinds.Config
}

// Generator produces artifacts.
type Generator struct {
	source   *templates.Source
	manifest *Manifest
	blocks   *workspace.Generator
	desktop  Desktop
	opts     Options
	logger   zerolog.Logger
}

// New creates a generator. desktop may be nil when no reload is wanted.
func New(source *templates.Source, manifest *Manifest, blocks *workspace.Generator, desktop Desktop, opts Options) *Generator {
	if manifest == nil {
		manifest = DefaultManifest()
	}
	if blocks == nil {
		blocks = workspace.NewGenerator(nil)
	}
	return &Generator{
		source:   source,
		manifest: manifest,
		blocks:   blocks,
		desktop:  desktop,
		opts:     opts,
		logger:   logging.Component("generator"),
	}
}

// Manifest returns the artifact manifest in use.
func (g *Generator) Manifest() *Manifest {
	return g.manifest
}

// Variables returns the flattened theme variables plus the workspace blocks.
func (g *Generator) Variables(ctx context.Context, doc *theme.Document) theme.Variables {
	vars := theme.Flatten(doc)
	return vars.Merge(g.blocks.Build(ctx, doc).Variables())
}

// Result is the outcome of one artifact.
type Result struct {
	Artifact string `json:"artifact"`
	Output   string `json:"output"`
	Err      error  `json:"-"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the artifact was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report tallies a generation run.
type Report struct {
	RunID     string   `json:"run_id"`
	Results   []Result `json:"results"`
	Succeeded int      `json:"succeeded"`
	Total     int      `json:"total"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Failed returns the failed results.
func (r Report) Failed() []Result {
	failed := make([]Result, 0)
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// GenerateAll writes every artifact in manifest order. A failing artifact is
// recorded and the batch continues. Reload failures become warnings.
func (g *Generator) GenerateAll(ctx context.Context, run Context) Report {
	report := Report{
		RunID: uuid.NewString(),
		Total: len(g.manifest.Artifacts),
	}
	logger := g.logger.With().Str("run_id", report.RunID).Logger()

	vars := g.Variables(ctx, run.Theme)
	for _, artifact := range g.manifest.Artifacts {
		result := g.generate(run, artifact, vars)
		if result.OK() {
			report.Succeeded++
			logger.Debug().Str("artifact", artifact.Name).Str("output", result.Output).Msg("artifact generated")
		} else {
			logger.Warn().Err(result.Err).Str("artifact", artifact.Name).Msg("artifact failed")
		}
		report.Results = append(report.Results, result)
	}

	logger.Info().
		Int("succeeded", report.Succeeded).
		Int("total", report.Total).
		Msg("generation finished")

	if g.opts.Reload && g.desktop != nil {
		report.Warnings = append(report.Warnings, g.reload(ctx, logger)...)
	}
	return report
}

// Regenerate writes a single artifact from doc without reloading.
func (g *Generator) Regenerate(ctx context.Context, doc *theme.Document, name string) error {
	artifact, err := g.manifest.Lookup(name)
	if err != nil {
		return err
	}
	result := g.generate(Context{Theme: doc}, artifact, g.Variables(ctx, doc))
	return result.Err
}

func (g *Generator) generate(run Context, artifact Artifact, vars theme.Variables) Result {
	result := Result{Artifact: artifact.Name, Output: g.OutputPath(artifact)}

	content, err := g.content(run, artifact, vars)
	if err == nil {
		err = templates.WriteFile(result.Output, content)
	}
	if err != nil {
		result.Err = err
		result.Error = err.Error()
	}
	return result
}

func (g *Generator) content(run Context, artifact Artifact, vars theme.Variables) (string, error) {
	switch artifact.Kind {
	case KindBindings:
		if run.Keybinds == nil {
			return "", errKeybindsNotLoaded
		}
		return keybinds.BindingsConf(run.Keybinds), nil
	case KindWaybar:
		data, err := WaybarConfig(run.Theme)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		tmpl, err := g.source.Load(artifact.TemplateName())
		if err != nil {
			return "", err
		}
		return templates.RenderTemplate(tmpl, vars)
	}
}

// OutputPath resolves an artifact's output against the output dir.
func (g *Generator) OutputPath(artifact Artifact) string {
	path := expandHome(artifact.Output)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(expandHome(g.opts.OutputDir), path)
}

func (g *Generator) reload(ctx context.Context, logger zerolog.Logger) []string {
	var warnings []string
	warn := func(msg string, err error) {
		logger.Warn().Err(err).Msg(msg)
		warnings = append(warnings, fmt.Sprintf("%s: %v", msg, err))
	}

	if err := g.desktop.Reload(ctx); err != nil {
		warn("hyprland reload failed", err)
	}
	for _, service := range g.opts.Services {
		if err := g.desktop.RestartService(ctx, service); err != nil {
			warn("restart "+service+" failed", err)
		}
	}
	return warnings
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
