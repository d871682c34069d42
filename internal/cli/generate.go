package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/generator"
	"github.com/opencode-ai/hyprsystem/internal/theme"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate every configuration file",
	Long: `Render every artifact in the manifest from the theme and keybind configs,
then reload Hyprland and restart the configured services.

A failing artifact is reported and skipped; the others are still written.`,
	Example: `  # Generate into ~/.config and reload
  hyprsystem generate

  # Generate into a scratch directory without reloading
  hyprsystem generate --output-dir /tmp/preview --no-reload`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	doc, err := theme.Load(cfg.ThemeConfigPath())
	if err != nil {
		return err
	}
	binds, err := loadKeybinds(cfg)
	if err != nil {
		return err
	}

	gen, err := newGenerator(cfg, newDesktopClient())
	if err != nil {
		return err
	}

	progress := startProgress(cmd.ErrOrStderr(), "Generating configurations")
	report := gen.GenerateAll(cmd.Context(), generator.Context{Theme: doc, Keybinds: binds})
	progress.Done()

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, report)
	}

	styles := newStatusStyles(out)
	for _, result := range report.Results {
		if result.OK() {
			fmt.Fprintln(out, styles.ok("Generated "+result.Output))
			continue
		}
		fmt.Fprintln(out, styles.fail(fmt.Sprintf("Failed %s: %v", result.Artifact, result.Err)))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintln(out, styles.warn(warning))
	}
	fmt.Fprintf(out, "Generated %d/%d configurations\n", report.Succeeded, report.Total)
	return nil
}
