// Command hyprsystem generates Hyprland desktop configuration from a central theme.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/hyprsystem/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
