package workspace

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/hyprsystem/internal/desktop"
	"github.com/opencode-ai/hyprsystem/internal/logging"
	"github.com/opencode-ai/hyprsystem/internal/theme"
)

// Template variable names for the generated blocks.
const (
	VarPluginConfig       = "workspace_plugin_config"
	VarKeybindings        = "workspace_keybindings"
	VarMonitorAssignments = "monitor_assignments"
)

// Workspaces per monitor in per-monitor mode.
const workspacesPerMonitor = 5

// MonitorQuerier reports the live monitor topology.
type MonitorQuerier interface {
	Monitors(ctx context.Context) ([]desktop.Monitor, error)
}

// Blocks holds the generated workspace text blocks.
type Blocks struct {
	Mode               Mode
	PluginConfig       string
	Keybindings        string
	MonitorAssignments string
}

// Variables returns the blocks keyed by template variable name.
func (b Blocks) Variables() map[string]string {
	return map[string]string{
		VarPluginConfig:       b.PluginConfig,
		VarKeybindings:        b.Keybindings,
		VarMonitorAssignments: b.MonitorAssignments,
	}
}

// Generator builds Blocks from a theme document.
type Generator struct {
	monitors MonitorQuerier
	logger   zerolog.Logger
}

// NewGenerator creates a generator. monitors may be nil, in which case
// monitor assignments are always empty.
func NewGenerator(monitors MonitorQuerier) *Generator {
	return &Generator{
		monitors: monitors,
		logger:   logging.Component("workspace"),
	}
}

// Build produces the blocks for the document's current mode.
func (g *Generator) Build(ctx context.Context, doc *theme.Document) Blocks {
	mode := ModeOf(doc)
	blocks := Blocks{Mode: mode}

	switch mode {
	case VirtualDesktops:
		blocks.PluginConfig = PluginConfig(doc.Section("workspaces", "plugin_settings"))
		blocks.Keybindings = virtualDesktopKeybindings
	case PerMonitor:
		blocks.Keybindings = PerMonitorKeybindings()
		blocks.MonitorAssignments = g.monitorAssignments(ctx)
	}
	return blocks
}

func (g *Generator) monitorAssignments(ctx context.Context) string {
	if g.monitors == nil {
		return ""
	}
	monitors, err := g.monitors.Monitors(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("monitor query failed; skipping workspace assignments")
		return ""
	}
	return MonitorAssignments(monitors)
}

// PluginConfig renders the virtual-desktops plugin section, one line per
// setting in key order.
func PluginConfig(settings map[string]any) string {
	var b strings.Builder
	b.WriteString("plugin {\n")
	b.WriteString("    virtual-desktops {\n")
	for _, key := range theme.SortedKeys(settings) {
		fmt.Fprintf(&b, "        %s = %s\n", key, theme.FormatScalar(settings[key]))
	}
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

const virtualDesktopKeybindings = `# Virtual desktops
bind = SUPER, 1, vdesk, 1
bind = SUPER, 2, vdesk, 2
bind = SUPER, 3, vdesk, 3
bind = SUPER, 4, vdesk, 4
bind = SUPER, 5, vdesk, 5
bind = SUPER SHIFT, 1, movetodesk, 1
bind = SUPER SHIFT, 2, movetodesk, 2
bind = SUPER SHIFT, 3, movetodesk, 3
bind = SUPER SHIFT, 4, movetodesk, 4
bind = SUPER SHIFT, 5, movetodesk, 5
bind = SUPER CTRL, right, nextdesk
bind = SUPER CTRL, left, prevdesk
`

// PerMonitorKeybindings covers workspaces 1-10, move-to for each, and
// next/previous. Workspace 10 is bound to key 0.
func PerMonitorKeybindings() string {
	var b strings.Builder
	b.WriteString("# Workspaces\n")
	for i := 1; i <= 2*workspacesPerMonitor; i++ {
		fmt.Fprintf(&b, "bind = SUPER, %s, workspace, %d\n", workspaceKey(i), i)
	}
	b.WriteString("\n# Move window to workspace\n")
	for i := 1; i <= 2*workspacesPerMonitor; i++ {
		fmt.Fprintf(&b, "bind = SUPER SHIFT, %s, movetoworkspace, %d\n", workspaceKey(i), i)
	}
	b.WriteString("\n# Next/previous workspace\n")
	b.WriteString("bind = SUPER CTRL, right, workspace, m+1\n")
	b.WriteString("bind = SUPER CTRL, left, workspace, m-1\n")
	return b.String()
}

func workspaceKey(index int) string {
	return strconv.Itoa(index % 10)
}

// MonitorAssignments pins workspaces 1-5 to the first monitor and 6-10 to
// the second. Fewer than two monitors yields an empty block.
func MonitorAssignments(monitors []desktop.Monitor) string {
	if len(monitors) < 2 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Monitor assignments\n")
	for m, monitor := range monitors[:2] {
		for i := 1; i <= workspacesPerMonitor; i++ {
			ws := m*workspacesPerMonitor + i
			if i == 1 {
				fmt.Fprintf(&b, "workspace = %d, monitor:%s, default:true\n", ws, monitor.Name)
				continue
			}
			fmt.Fprintf(&b, "workspace = %d, monitor:%s\n", ws, monitor.Name)
		}
	}
	return b.String()
}
