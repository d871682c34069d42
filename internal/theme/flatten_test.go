package theme

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/hyprsystem/internal/templates"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", "theme-config.json"))
	require.NoError(t, err)
	return doc
}

func TestFlattenFixture(t *testing.T) {
	vars := Flatten(loadFixture(t))

	require.Equal(t, "#00ffff", vars["cyberpunk_neon_cyan"])
	require.Equal(t, "#00ffff", vars["primary_accent"])
	require.Equal(t, "rgba(68, 68, 68, 0.6)", vars["primary_border_inactive"])
	require.Equal(t, "#111111", vars["primary_bg_overlay"])

	require.Equal(t, "#8b0000", vars["error"])
	require.Equal(t, "#8b0000", vars["semantic_error"])
	require.Equal(t, "#39ff14", vars["success"])

	require.Equal(t, "JetBrainsMono Nerd Font", vars["font_primary"])
	require.Equal(t, "Cinzel", vars["font_secondary"])
	require.Equal(t, "12", vars["font_size_normal"])
	require.Equal(t, "5", vars["gaps_inner"])
	require.Equal(t, "16", vars["margin_xlarge"])
	require.Equal(t, "true", vars["blur_enabled"])
	require.Equal(t, "0.1696", vars["blur_vibrancy"])
	require.Equal(t, "false", vars["shadow_enabled"])
	require.Equal(t, "0.68, -0.55, 0.265, 1.55", vars["curve_glow"])
	require.Equal(t, "34", vars["waybar_height"])
	require.Equal(t, "600", vars["rofi_width"])
	require.Equal(t, "virtual_desktops", vars["workspace_mode"])
}

func TestFlattenOverlayFallbackScenario(t *testing.T) {
	doc, err := Parse([]byte(`{
		"colors": {
			"cyberpunk": {"neon_cyan": "#00ffff"},
			"primary": {"bg_secondary": "#111111"}
		}
	}`))
	require.NoError(t, err)

	vars := Flatten(doc)
	require.Equal(t, "#00ffff", vars["cyberpunk_neon_cyan"])
	require.Equal(t, "#111111", vars["primary_bg_overlay"])
}

func TestFlattenOverlayPresentWins(t *testing.T) {
	doc, err := Parse([]byte(`{"colors": {"primary": {"bg_secondary": "#111111", "bg_overlay": "#222222"}}}`))
	require.NoError(t, err)
	require.Equal(t, "#222222", Flatten(doc)["primary_bg_overlay"])
}

func TestFlattenDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"spacing": {"gaps_inner": 3}}`))
	require.NoError(t, err)

	vars := Flatten(doc)
	require.Equal(t, "3", vars["gaps_inner"])
	require.Equal(t, DefaultFontPrimary, vars["font_primary"])
	require.Equal(t, DefaultFontPrimary, vars["font_secondary"])
	require.Equal(t, DefaultWorkspaceMode, vars["workspace_mode"])

	_, ok := vars["gaps_outer"]
	require.False(t, ok, "absent keys without fallback are not emitted")
	_, ok = vars["primary_bg_overlay"]
	require.False(t, ok)
}

func TestFlattenNullFieldIsEmitted(t *testing.T) {
	doc, err := Parse([]byte(`{"spacing": {"gaps_inner": null}, "typography": {"font_primary": null}}`))
	require.NoError(t, err)

	vars := Flatten(doc)
	value, ok := vars["gaps_inner"]
	require.True(t, ok)
	require.Empty(t, value)
	require.Empty(t, vars["font_primary"], "fallbacks apply to absent keys only")

	out, err := templates.Render("g=${gaps_inner}", vars)
	require.NoError(t, err)
	require.Equal(t, "g=", out)
}

func TestFlattenSecondaryFontFollowsPrimary(t *testing.T) {
	doc, err := Parse([]byte(`{"typography": {"font_primary": "Iosevka"}}`))
	require.NoError(t, err)
	require.Equal(t, "Iosevka", Flatten(doc)["font_secondary"])
}

func TestFlattenScalarsOverrideSemanticNames(t *testing.T) {
	doc, err := Parse([]byte(`{
		"colors": {"semantic": {"rounding": "#ffffff"}},
		"spacing": {"rounding": 8}
	}`))
	require.NoError(t, err)
	require.Equal(t, "8", Flatten(doc)["rounding"])
}

func TestVariablesMerge(t *testing.T) {
	vars := Variables{"a": "1", "b": "2"}
	vars.Merge(map[string]string{"b": "3", "c": "4"})
	require.Equal(t, Variables{"a": "1", "b": "3", "c": "4"}, vars)
	require.Equal(t, []string{"a", "b", "c"}, vars.Keys())
}
