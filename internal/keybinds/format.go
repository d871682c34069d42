package keybinds

import (
	"strings"
	"unicode"
)

// Symbol maps a key name to its display glyph.
type Symbol struct {
	Key   string
	Glyph string
}

// Symbols is the key-name table in application order.
var Symbols = []Symbol{
	{Key: "SUPER", Glyph: "⊞"},
	{Key: "SHIFT", Glyph: "⇧"},
	{Key: "CTRL", Glyph: "⌃"},
	{Key: "ALT", Glyph: "⌥"},
	{Key: "RETURN", Glyph: "↵"},
	{Key: "SPACE", Glyph: "␣"},
	{Key: "left", Glyph: "←"},
	{Key: "right", Glyph: "→"},
	{Key: "up", Glyph: "↑"},
	{Key: "down", Glyph: "↓"},
	{Key: "XF86AudioRaiseVolume", Glyph: "🔊+"},
	{Key: "XF86AudioLowerVolume", Glyph: "🔉-"},
	{Key: "XF86AudioMute", Glyph: "🔇"},
	{Key: "XF86AudioPlay", Glyph: "⏯️"},
	{Key: "XF86AudioNext", Glyph: "⏭️"},
	{Key: "XF86AudioPrev", Glyph: "⏮️"},
	{Key: "XF86MonBrightnessUp", Glyph: "☀️+"},
	{Key: "XF86MonBrightnessDown", Glyph: "☀️-"},
	{Key: "Print", Glyph: "📷"},
}

var symbolIndex = func() map[string]string {
	index := make(map[string]string, len(Symbols))
	for _, s := range Symbols {
		index[s.Key] = s.Glyph
	}
	return index
}()

// Formatter turns raw combos such as "SUPER SHIFT,Q" into display form.
type Formatter struct {
	// Legacy applies the table as ordered substring replacements, so
	// "leftbracket" becomes "←bracket". The default matches whole tokens only.
	Legacy bool
}

// Format returns the display form of raw.
func (f Formatter) Format(raw string) string {
	if f.Legacy {
		return formatLegacy(raw)
	}
	return formatTokens(raw)
}

// FormatKeyCombo formats raw with the default token formatter.
func FormatKeyCombo(raw string) string {
	return formatTokens(raw)
}

func isKeyDelimiter(r rune) bool {
	return r == ',' || r == '+' || unicode.IsSpace(r)
}

// formatTokens splits raw on whitespace, commas and plus signs, replaces
// tokens that exactly match a key name and keeps the delimiters.
func formatTokens(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		token := raw[start:end]
		if glyph, ok := symbolIndex[token]; ok {
			out.WriteString(glyph)
		} else {
			out.WriteString(token)
		}
		start = -1
	}

	for i, r := range raw {
		if isKeyDelimiter(r) {
			flush(i)
			out.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(raw))

	return out.String()
}

func formatLegacy(raw string) string {
	formatted := raw
	for _, s := range Symbols {
		formatted = strings.ReplaceAll(formatted, s.Key, s.Glyph)
	}
	return formatted
}
