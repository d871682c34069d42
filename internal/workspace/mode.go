// Package workspace builds the workspace-related configuration blocks and
// switches between the two workspace modes.
package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/hyprsystem/internal/theme"
)

// Mode selects how workspaces are organized.
type Mode string

const (
	// VirtualDesktops groups workspaces across monitors with the virtual-desktops plugin.
	VirtualDesktops Mode = "virtual_desktops"
	// PerMonitor pins workspaces 1-5 and 6-10 to the first two monitors.
	PerMonitor Mode = "per_monitor"
)

// ErrUnknownMode is returned by ParseMode for anything but the two modes.
var ErrUnknownMode = errors.New("unknown workspace mode")

// ParseMode parses a mode name.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.TrimSpace(value)) {
	case VirtualDesktops:
		return VirtualDesktops, nil
	case PerMonitor:
		return PerMonitor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// ModeOf returns the document's mode. Unknown values fall back to VirtualDesktops.
func ModeOf(doc *theme.Document) Mode {
	mode, err := ParseMode(doc.WorkspaceMode())
	if err != nil {
		return VirtualDesktops
	}
	return mode
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == PerMonitor {
		return VirtualDesktops
	}
	return PerMonitor
}

func (m Mode) String() string {
	return string(m)
}
