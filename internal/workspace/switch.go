package workspace

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/hyprsystem/internal/logging"
	"github.com/opencode-ai/hyprsystem/internal/theme"
)

// ArtifactName is the template that receives the workspace blocks.
const ArtifactName = "hypr-workspaces"

// Regenerator rewrites a single artifact from a theme document.
type Regenerator interface {
	Regenerate(ctx context.Context, doc *theme.Document, artifact string) error
}

// Desktop is the subset of desktop actions used after a switch.
type Desktop interface {
	Reload(ctx context.Context) error
	Notify(ctx context.Context, summary, body string) error
}

// SwitchResult describes a completed mode switch.
type SwitchResult struct {
	From     Mode     `json:"from"`
	To       Mode     `json:"to"`
	Warnings []string `json:"warnings,omitempty"`
}

// SwitcherOptions configures a Switcher.
type SwitcherOptions struct {
	// Regenerator rewrites the workspace artifact; nil skips regeneration.
	Regenerator Regenerator

	// Desktop reloads and notifies; nil skips both.
	Desktop Desktop

	Reload bool
	Notify bool
}

// Switcher toggles the persisted workspace mode.
type Switcher struct {
	store  *theme.Store
	opts   SwitcherOptions
	logger zerolog.Logger
}

// NewSwitcher creates a switcher over the theme document store.
func NewSwitcher(store *theme.Store, opts SwitcherOptions) *Switcher {
	return &Switcher{
		store:  store,
		opts:   opts,
		logger: logging.Component("workspace"),
	}
}

// Current returns the persisted mode without changing it.
func (s *Switcher) Current() (Mode, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	return ModeOf(doc), nil
}

// Switch toggles workspaces.mode under the store lock, persists it, then
// regenerates the workspace artifact and reloads. Reload and notification
// failures are reported as warnings.
func (s *Switcher) Switch(ctx context.Context) (SwitchResult, error) {
	var result SwitchResult

	doc, err := s.store.Update(func(doc *theme.Document) error {
		result.From = ModeOf(doc)
		result.To = result.From.Toggle()
		doc.SetWorkspaceMode(result.To.String())
		return nil
	})
	if err != nil {
		return SwitchResult{}, fmt.Errorf("switch workspace mode: %w", err)
	}

	s.logger.Info().
		Str("from", result.From.String()).
		Str("to", result.To.String()).
		Msg("workspace mode switched")

	if s.opts.Regenerator != nil {
		if err := s.opts.Regenerator.Regenerate(ctx, doc, ArtifactName); err != nil {
			return result, fmt.Errorf("regenerate %s: %w", ArtifactName, err)
		}
	}

	if s.opts.Desktop == nil {
		return result, nil
	}
	if s.opts.Reload {
		if err := s.opts.Desktop.Reload(ctx); err != nil {
			result.warn(s.logger, "reload failed", err)
		}
	}
	if s.opts.Notify {
		body := fmt.Sprintf("Switched to %s", result.To)
		if err := s.opts.Desktop.Notify(ctx, "Workspace mode", body); err != nil {
			result.warn(s.logger, "notification failed", err)
		}
	}
	return result, nil
}

func (r *SwitchResult) warn(logger zerolog.Logger, msg string, err error) {
	logger.Warn().Err(err).Msg(msg)
	r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %v", msg, err))
}
