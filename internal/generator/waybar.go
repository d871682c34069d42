package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/opencode-ai/hyprsystem/internal/theme"
)

var errWaybarSectionMissing = errors.New("components.waybar is missing from the theme config")

// Workspaces shown permanently in the bar.
const persistentWorkspaces = 5

// WaybarConfig builds the Waybar config.jsonc from components.waybar,
// spacing.margins.medium and workspaces.icons.
func WaybarConfig(doc *theme.Document) ([]byte, error) {
	bar := doc.Section("components", "waybar")
	if bar == nil {
		return nil, errWaybarSectionMissing
	}

	spacing, _ := doc.Lookup("spacing", "margins", "medium")
	icons := doc.Section("workspaces", "icons")
	if icons == nil {
		icons = map[string]any{}
	}

	persistent := make(map[string]any, persistentWorkspaces)
	for i := 1; i <= persistentWorkspaces; i++ {
		persistent[strconv.Itoa(i)] = []any{}
	}

	config := map[string]any{
		"layer":          "top",
		"position":       "top",
		"height":         bar["height"],
		"spacing":        spacing,
		"margin-top":     bar["margin_top"],
		"margin-left":    bar["margin_sides"],
		"margin-right":   bar["margin_sides"],
		"modules-left":   listOrEmpty(bar["modules_left"]),
		"modules-center": listOrEmpty(bar["modules_center"]),
		"modules-right":  listOrEmpty(bar["modules_right"]),

		"custom/logo": map[string]any{
			"format":   "⚔️",
			"tooltip":  false,
			"on-click": "rofi -show drun",
		},
		"hyprland/workspaces": map[string]any{
			"format":                "{icon}",
			"format-icons":          icons,
			"persistent_workspaces": persistent,
			"on-click":              "activate",
		},
		"hyprland/window": map[string]any{
			"format":     "{}",
			"max-length": 50,
			"tooltip":    false,
		},
		"clock": map[string]any{
			"format":         "{:%H:%M 🕐 %a %d %b}",
			"format-alt":     "{:%Y-%m-%d %H:%M:%S}",
			"tooltip-format": "<big>{:%Y %B}</big>\\n<tt><small>{calendar}</small></tt>",
		},
		"network": map[string]any{
			"interface":           "wlp*",
			"format-wifi":         "📶 {signalStrength}%",
			"format-ethernet":     "🌐 {ifname}",
			"format-disconnected": "❌ Disconnected",
			"tooltip-format":      "{ifname}: {ipaddr}/{cidr}\\nGateway: {gwaddr}\\nStrength: {signalStrength}%",
			"on-click":            "nm-connection-editor",
		},
		"bluetooth": map[string]any{
			"format":                   "🔵 {status}",
			"format-connected":         "🔵 {device_alias}",
			"format-connected-battery": "🔵 {device_alias} {device_battery_percentage}%",
			"on-click":                 "~/.config/hypr-system/scripts/bluetooth-control.sh",
		},
		"pulseaudio": map[string]any{
			"format":                 "{icon} {volume}%",
			"format-bluetooth":       "{icon} {volume}% 🔵",
			"format-bluetooth-muted": "🔇 🔵",
			"format-muted":           "🔇",
			"format-icons": map[string]any{
				"headphone":  "🎧",
				"hands-free": "🎙️",
				"headset":    "🎧",
				"phone":      "📱",
				"portable":   "📱",
				"car":        "🚗",
				"default":    []string{"🔈", "🔉", "🔊"},
			},
			"on-click":       "pavucontrol",
			"on-click-right": "~/.config/hypr-system/scripts/volume-control.sh mute",
		},
		"battery": map[string]any{
			"states": map[string]any{
				"warning":  30,
				"critical": 15,
			},
			"format":          "{icon} {capacity}%",
			"format-charging": "⚡ {capacity}%",
			"format-plugged":  "🔌 {capacity}%",
			"format-alt":      "{icon} {time}",
			"format-icons":    []string{"🪫", "🔋", "🔋", "🔋", "🔋"},
		},
		"custom/zerotier": map[string]any{
			"format":   "🌐 {}",
			"exec":     "~/.config/hypr-system/scripts/zerotier-status.sh",
			"interval": 30,
			"tooltip":  true,
			"on-click": "~/.config/hypr-system/scripts/zerotier-control.sh",
		},
		"tray": map[string]any{
			"spacing": 10,
		},
		"custom/config": map[string]any{
			"format":   "⚙️",
			"tooltip":  "Configuration Menu",
			"on-click": "~/.config/hypr-system/scripts/config-menu.sh",
		},
		"custom/power": map[string]any{
			"format":   "⚡",
			"tooltip":  false,
			"on-click": "~/.config/hypr-system/scripts/power-menu.sh",
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("encode waybar config: %w", err)
	}
	return buf.Bytes(), nil
}

func listOrEmpty(value any) any {
	if list, ok := value.([]any); ok {
		return list
	}
	return []any{}
}
