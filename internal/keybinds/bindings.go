package keybinds

import (
	"fmt"
	"strings"
)

// BindingsConf renders cfg as a Hyprland bindings.conf.
func BindingsConf(cfg *Config) string {
	var b strings.Builder
	b.WriteString("# Generated by hyprsystem - do not edit manually.\n\n")

	for _, category := range cfg.Categories {
		fmt.Fprintf(&b, "# %s\n", category.Name)
		for _, binding := range category.Bindings {
			fmt.Fprintf(&b, "%s = %s, %s\n", binding.BindType(), binding.Combo, binding.Command)
		}
		b.WriteString("\n")
	}

	return b.String()
}
