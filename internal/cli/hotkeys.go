package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/hyprsystem/internal/keybinds"
)

var (
	hotkeysRofi   bool
	hotkeysSearch string
	hotkeysFuzzy  bool
	hotkeysCount  bool
)

func init() {
	rootCmd.AddCommand(hotkeysCmd)

	hotkeysCmd.Flags().BoolVar(&hotkeysRofi, "rofi", false, "one 'key → description' line per binding, for rofi -dmenu")
	hotkeysCmd.Flags().StringVar(&hotkeysSearch, "search", "", "search descriptions and keys")
	hotkeysCmd.Flags().BoolVar(&hotkeysFuzzy, "fuzzy", false, "rank --search results by fuzzy match")
	hotkeysCmd.Flags().BoolVar(&hotkeysCount, "count", false, "show category and binding counts")
}

var hotkeysCmd = &cobra.Command{
	Use:   "hotkeys",
	Short: "List configured hotkeys",
	Long: `List the bindings from keybind-config.json with key names replaced by symbols.

Without flags, bindings are printed grouped by category. --json prints the
structured listing.`,
	Example: `  hyprsystem hotkeys
  hyprsystem hotkeys --rofi | rofi -dmenu
  hyprsystem hotkeys --search volume
  hyprsystem hotkeys --search tmnl --fuzzy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		binds, err := loadKeybinds(cfg)
		if err != nil {
			return err
		}
		views := keybinds.NewViews(binds, hotkeyFormatter(cfg))
		out := cmd.OutOrStdout()

		switch {
		case hotkeysRofi:
			fmt.Fprintln(out, views.Rofi())
			return nil

		case strings.TrimSpace(hotkeysSearch) != "":
			var results []keybinds.SearchResult
			if hotkeysFuzzy {
				results = views.FuzzySearch(hotkeysSearch)
			} else {
				results = views.Search(hotkeysSearch)
			}
			if IsJSONOutput() {
				return WriteOutput(out, results)
			}
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching hotkeys found.")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s → %s (%s)\n", r.Key, r.Description, r.Category)
			}
			return nil

		case hotkeysCount:
			counts := views.Counts()
			if IsJSONOutput() {
				return WriteOutput(out, counts)
			}
			fmt.Fprintf(out, "Categories: %d, Total bindings: %d\n", counts.Categories, counts.TotalBindings)
			return nil

		case IsJSONOutput():
			return WriteOutput(out, views.Structured())

		default:
			fmt.Fprintln(out, views.Text())
			return nil
		}
	},
}
