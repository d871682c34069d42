package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/theme"
)

func init() {
	rootCmd.AddCommand(varsCmd)
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Print the template variables derived from the theme config",
	Long: `Print every ${identifier} available to templates, with its value.

Workspace blocks are included; their values depend on the workspace mode and,
in per_monitor mode, on the connected monitors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		doc, err := theme.Load(cfg.ThemeConfigPath())
		if err != nil {
			return err
		}
		gen, err := newGenerator(cfg, newDesktopClient())
		if err != nil {
			return err
		}
		vars := gen.Variables(cmd.Context(), doc)

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, vars)
		}

		rows := make([][]string, 0, len(vars))
		for _, key := range vars.Keys() {
			rows = append(rows, []string{key, oneLine(vars[key])})
		}
		return writeTable(out, []string{"VARIABLE", "VALUE"}, rows)
	},
}

// oneLine keeps multi-line blocks on a single table row.
func oneLine(value string) string {
	value = strings.TrimRight(value, "\n")
	lines := strings.Count(value, "\n") + 1
	if lines == 1 {
		return value
	}
	return fmt.Sprintf("<%d lines>", lines)
}
