package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeCheckCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the theme config",
}

var themeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report color entries that do not resolve to a valid color",
	Long: `Check every entry under colors for references that do not resolve, chained
references (only one hop is followed) and malformed hex values.

The check is advisory: generation degrades these entries to literal text.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := theme.Load(GetConfig().ThemeConfigPath())
		if err != nil {
			return err
		}
		issues := theme.CheckColors(doc)

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if issues == nil {
				issues = []theme.ColorIssue{}
			}
			return WriteOutput(out, issues)
		}

		styles := newStatusStyles(out)
		if len(issues) == 0 {
			fmt.Fprintln(out, styles.ok("all colors resolve"))
			return nil
		}
		for _, issue := range issues {
			fmt.Fprintln(out, styles.warn(issue.String()))
		}
		fmt.Fprintf(out, "%d color issue(s)\n", len(issues))
		return nil
	},
}
