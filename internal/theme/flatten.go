package theme

import "sort"

// SemanticCategory is the color category whose entries are also exposed
// under their bare names.
const SemanticCategory = "semantic"

// DefaultFontPrimary is used when typography.font_primary is absent.
const DefaultFontPrimary = "JetBrainsMono Nerd Font"

// Variables is the flat identifier -> value mapping handed to templates.
type Variables map[string]string

// Merge copies extra into v, overriding existing keys, and returns v.
func (v Variables) Merge(extra map[string]string) Variables {
	for key, value := range extra {
		v[key] = value
	}
	return v
}

// Keys returns the variable names in lexical order.
func (v Variables) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type scalarVar struct {
	key  string
	path []string
	// fallback is consulted only when path is absent.
	fallback func(vars Variables) (string, bool)
}

func constant(value string) func(Variables) (string, bool) {
	return func(Variables) (string, bool) { return value, true }
}

func fromVar(key string) func(Variables) (string, bool) {
	return func(vars Variables) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

var scalarVars = []scalarVar{
	{key: "font_primary", path: []string{"typography", "font_primary"}, fallback: constant(DefaultFontPrimary)},
	{key: "font_secondary", path: []string{"typography", "font_secondary"}, fallback: fromVar("font_primary")},
	{key: "font_size_small", path: []string{"typography", "size_small"}},
	{key: "font_size_normal", path: []string{"typography", "size_normal"}},
	{key: "font_size_large", path: []string{"typography", "size_large"}},
	{key: "font_size_title", path: []string{"typography", "size_title"}},

	{key: "gaps_inner", path: []string{"spacing", "gaps_inner"}},
	{key: "gaps_outer", path: []string{"spacing", "gaps_outer"}},
	{key: "border_width", path: []string{"spacing", "border_width"}},
	{key: "rounding", path: []string{"spacing", "rounding"}},
	{key: "margin_small", path: []string{"spacing", "margins", "small"}},
	{key: "margin_medium", path: []string{"spacing", "margins", "medium"}},
	{key: "margin_large", path: []string{"spacing", "margins", "large"}},
	{key: "margin_xlarge", path: []string{"spacing", "margins", "xlarge"}},

	{key: "blur_enabled", path: []string{"effects", "blur", "enabled"}},
	{key: "blur_size", path: []string{"effects", "blur", "size"}},
	{key: "blur_passes", path: []string{"effects", "blur", "passes"}},
	{key: "blur_vibrancy", path: []string{"effects", "blur", "vibrancy"}},

	{key: "shadow_enabled", path: []string{"effects", "shadow", "enabled"}},
	{key: "shadow_range", path: []string{"effects", "shadow", "range"}},
	{key: "shadow_render_power", path: []string{"effects", "shadow", "render_power"}},

	{key: "anim_enabled", path: []string{"effects", "animations", "enabled"}},
	{key: "curve_cyberpunk", path: []string{"effects", "animations", "curves", "cyberpunk"}},
	{key: "curve_medieval", path: []string{"effects", "animations", "curves", "medieval"}},
	{key: "curve_smooth", path: []string{"effects", "animations", "curves", "smooth"}},
	{key: "curve_glow", path: []string{"effects", "animations", "curves", "glow"}},

	{key: "waybar_height", path: []string{"components", "waybar", "height"}},
	{key: "waybar_margin_top", path: []string{"components", "waybar", "margin_top"}},
	{key: "waybar_margin_sides", path: []string{"components", "waybar", "margin_sides"}},

	{key: "rofi_width", path: []string{"components", "rofi", "width"}},
	{key: "rofi_lines", path: []string{"components", "rofi", "lines"}},

	{key: "workspace_mode", path: []string{"workspaces", "mode"}, fallback: constant(DefaultWorkspaceMode)},
}

// Flatten builds the template variables for doc.
//
// Order of precedence, lowest first: prefixed colors, semantic bare names,
// scalar settings. Callers merge their own blocks on top with Merge.
func Flatten(doc *Document) Variables {
	vars := make(Variables)
	colors := doc.ResolvedColors()

	for category, group := range colors {
		for name, value := range group {
			vars[category+"_"+name] = value
		}
	}
	if _, ok := vars["primary_bg_overlay"]; !ok {
		if bg, ok := vars["primary_bg_secondary"]; ok {
			vars["primary_bg_overlay"] = bg
		}
	}

	for name, value := range colors[SemanticCategory] {
		vars[name] = value
	}

	for _, scalar := range scalarVars {
		if value, ok := doc.String(scalar.path...); ok {
			vars[scalar.key] = value
			continue
		}
		if scalar.fallback == nil {
			continue
		}
		if value, ok := scalar.fallback(vars); ok {
			vars[scalar.key] = value
		}
	}

	return vars
}
