package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/templates"
	"github.com/opencode-ai/hyprsystem/internal/theme"
	"github.com/opencode-ai/hyprsystem/internal/workspace"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesCheckCmd)
	templatesCmd.AddCommand(templatesListCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect artifact templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates and where they come from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := templateSource(GetConfig()).List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, list)
		}
		styles := newStatusStyles(out)
		rows := make([][]string, 0, len(list))
		for _, tmpl := range list {
			rows = append(rows, []string{tmpl.Name, styles.Muted.Render(tmpl.Source)})
		}
		return writeTable(out, []string{"NAME", "SOURCE"}, rows)
	},
}

var templatesCheckCmd = &cobra.Command{
	Use:   "check [template...]",
	Short: "Report placeholder problems in templates",
	Long: `Check templates for unclosed placeholders, unbalanced braces, invalid
variable names and variables the theme config does not provide.

Checks every template when none is named. The report is advisory and the
command succeeds even when issues are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		source := templateSource(cfg)

		var known map[string]string
		if doc, err := theme.Load(cfg.ThemeConfigPath()); err == nil {
			known = theme.Flatten(doc)
			for _, name := range []string{workspace.VarPluginConfig, workspace.VarKeybindings, workspace.VarMonitorAssignments} {
				known[name] = ""
			}
		}

		list, err := templatesToCheck(source, args)
		if err != nil {
			return err
		}

		reports := make([]templates.Report, 0, len(list))
		for _, tmpl := range list {
			reports = append(reports, templates.Diagnose(tmpl, known))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, reports)
		}

		styles := newStatusStyles(out)
		if known == nil {
			fmt.Fprintln(out, styles.warn("theme config not loaded; unknown variables are not checked"))
		}
		fmt.Fprintln(out, styles.Title.Render("Template placeholders"))
		rows := make([][]string, 0, len(reports))
		for _, report := range reports {
			rows = append(rows, []string{
				report.Template,
				strconv.Itoa(report.Placeholders),
				strconv.Itoa(len(report.Issues)),
				styles.yesNo(report.OK()),
			})
		}
		if err := writeTable(out, []string{"TEMPLATE", "PLACEHOLDERS", "ISSUES", "OK"}, rows); err != nil {
			return err
		}
		for _, report := range reports {
			for _, issue := range report.Issues {
				fmt.Fprintln(out, styles.fail(issue.String()))
			}
		}
		return nil
	},
}

// templatesToCheck returns the named templates, or every available one.
func templatesToCheck(source *templates.Source, names []string) ([]*templates.Template, error) {
	if len(names) == 0 {
		return source.List()
	}
	list := make([]*templates.Template, 0, len(names))
	for _, name := range names {
		tmpl, err := source.Load(name)
		if err != nil {
			return nil, err
		}
		list = append(list, tmpl)
	}
	return list, nil
}
