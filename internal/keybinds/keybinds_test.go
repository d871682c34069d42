package keybinds

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(filepath.Join("testdata", "keybind-config.json"))
	require.NoError(t, err)
	return cfg
}

func TestLoadKeepsDocumentOrder(t *testing.T) {
	cfg := loadFixture(t)

	require.Len(t, cfg.Categories, 2)
	require.Equal(t, "apps", cfg.Categories[0].ID)
	require.Equal(t, "Applications", cfg.Categories[0].Name)
	require.Equal(t, "media", cfg.Categories[1].ID)

	combos := make([]string, 0)
	for _, b := range cfg.Categories[0].Bindings {
		combos = append(combos, b.Combo)
	}
	require.Equal(t, []string{"SUPER,RETURN", "SUPER,R", "SUPER SHIFT,Q"}, combos)
	require.Equal(t, "binde", cfg.Categories[1].Bindings[0].Type)
	require.Equal(t, "bind", cfg.Categories[0].Bindings[0].BindType())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "keybind-config.json"))
	require.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestParseDuplicateKeyKeepsLastValue(t *testing.T) {
	cfg, err := Parse([]byte(`{"categories": {"a": {"name": "A", "bindings": {
		"SUPER,Q": {"command": "first", "description": "x"},
		"SUPER,W": {"command": "w", "description": "w"},
		"SUPER,Q": {"command": "second", "description": "y"}
	}}}}`))
	require.NoError(t, err)
	require.Len(t, cfg.Categories[0].Bindings, 2)
	require.Equal(t, "SUPER,Q", cfg.Categories[0].Bindings[0].Combo)
	require.Equal(t, "second", cfg.Categories[0].Bindings[0].Command)
}

func TestParseRejectsNonObjectCategories(t *testing.T) {
	_, err := Parse([]byte(`{"categories": []}`))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, cfg.Categories)
}

func TestTextListingScenario(t *testing.T) {
	cfg, err := Parse([]byte(`{"categories": {"launch": {"name": "Launch", "icon": "L", "bindings": {
		"SUPER,R": {"command": "run", "description": "Run app"}
	}}}}`))
	require.NoError(t, err)

	text := NewViews(cfg, Formatter{}).Text()
	lines := strings.Split(text, "\n")

	require.Equal(t, []string{"", "Launch", "======", "⊞,R" + strings.Repeat(" ", 22) + " Run app"}, lines)
}

func TestStructured(t *testing.T) {
	listing := NewViews(loadFixture(t), Formatter{}).Structured()

	require.Len(t, listing.Categories, 2)
	first := listing.Categories[0]
	require.Equal(t, "apps", first.ID)
	require.Equal(t, "A", first.Icon)
	require.Equal(t, DisplayBinding{
		Key:         "⊞,↵",
		KeyRaw:      "SUPER,RETURN",
		Description: "Open terminal",
		Command:     "exec, kitty",
	}, first.Bindings[0])
}

func TestRofi(t *testing.T) {
	rofi := NewViews(loadFixture(t), Formatter{}).Rofi()
	lines := strings.Split(rofi, "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "⊞,↵ → Open terminal", lines[0])
	require.Equal(t, ",📷 → Screenshot", lines[6])
}

func TestSearchVolumeScenario(t *testing.T) {
	results := NewViews(loadFixture(t), Formatter{}).Search("VOLUME")

	require.Len(t, results, 2)
	for _, r := range results {
		require.Equal(t, "Media", r.Category)
		matched := strings.Contains(strings.ToLower(r.Description), "volume") ||
			strings.Contains(strings.ToLower(r.KeyRaw), "volume")
		require.True(t, matched, "unexpected result %+v", r)
	}
	require.Equal(t, "Volume up", results[0].Description)
	require.Equal(t, ",🔊+", results[0].Key)
}

func TestSearchMatchesRawKey(t *testing.T) {
	results := NewViews(loadFixture(t), Formatter{}).Search("shift")
	require.Len(t, results, 1)
	require.Equal(t, "Close window", results[0].Description)
}

func TestSearchNoMatch(t *testing.T) {
	require.Empty(t, NewViews(loadFixture(t), Formatter{}).Search("nothing-here"))
}

func TestFuzzySearch(t *testing.T) {
	results := NewViews(loadFixture(t), Formatter{}).FuzzySearch("scrnsht")
	require.NotEmpty(t, results)
	require.Equal(t, "Screenshot", results[0].Description)
}

func TestCounts(t *testing.T) {
	require.Equal(t, Counts{Categories: 2, TotalBindings: 7}, NewViews(loadFixture(t), Formatter{}).Counts())
	require.Equal(t, Counts{}, NewViews(nil, Formatter{}).Counts())
}

func TestBindingsConf(t *testing.T) {
	conf := BindingsConf(loadFixture(t))

	require.True(t, strings.HasPrefix(conf, "# Generated by hyprsystem"))
	require.Contains(t, conf, "# Applications\nbind = SUPER,RETURN, exec, kitty\n")
	require.Contains(t, conf, "binde = ,XF86AudioRaiseVolume, exec, wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+\n")
	require.Less(t, strings.Index(conf, "# Applications"), strings.Index(conf, "# Media"))
}
