package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/workspace"
)

func init() {
	rootCmd.AddCommand(wsCmd)
	wsCmd.AddCommand(wsToggleCmd)
	wsCmd.AddCommand(wsStatusCmd)
}

var wsCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage the workspace mode",
	Long: `Manage the workspace mode stored in theme-config.json.

virtual_desktops groups workspaces across monitors with the virtual-desktops
plugin; per_monitor pins workspaces 1-5 and 6-10 to the first two monitors.`,
}

var wsToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between virtual_desktops and per_monitor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switcher, err := newSwitcher(GetConfig())
		if err != nil {
			return err
		}

		result, err := switcher.Switch(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, result)
		}

		styles := newStatusStyles(out)
		fmt.Fprintln(out, styles.ok(fmt.Sprintf("Workspace mode: %s -> %s", result.From, result.To)))
		for _, warning := range result.Warnings {
			fmt.Fprintln(out, styles.warn(warning))
		}
		return nil
	},
}

var wsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current workspace mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switcher, err := newSwitcher(GetConfig())
		if err != nil {
			return err
		}
		mode, err := switcher.Current()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]workspace.Mode{"mode": mode})
		}
		fmt.Fprintln(out, mode)
		return nil
	},
}
