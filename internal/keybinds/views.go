package keybinds

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// textKeyWidth is the column width of the key in the text listing.
const textKeyWidth = 25

// DisplayBinding is a binding prepared for display.
type DisplayBinding struct {
	Key         string `json:"key"`
	KeyRaw      string `json:"key_raw"`
	Description string `json:"description"`
	Command     string `json:"command"`
}

// DisplayCategory is a category prepared for display.
type DisplayCategory struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Icon     string           `json:"icon"`
	Bindings []DisplayBinding `json:"bindings"`
}

// Listing is the structured view of the whole config.
type Listing struct {
	Categories []DisplayCategory `json:"categories"`
}

// SearchResult is one search hit.
type SearchResult struct {
	Key         string `json:"key"`
	KeyRaw      string `json:"key_raw"`
	Description string `json:"description"`
	Command     string `json:"command"`
	Category    string `json:"category"`
}

// Counts aggregates the config.
type Counts struct {
	Categories    int `json:"categories"`
	TotalBindings int `json:"total_bindings"`
}

// Views renders read-only views over a Config.
type Views struct {
	cfg       *Config
	formatter Formatter
}

// NewViews returns views over cfg using formatter for keys.
func NewViews(cfg *Config, formatter Formatter) *Views {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Views{cfg: cfg, formatter: formatter}
}

// Structured returns categories with formatted and raw keys.
func (v *Views) Structured() Listing {
	listing := Listing{Categories: make([]DisplayCategory, 0, len(v.cfg.Categories))}
	for _, category := range v.cfg.Categories {
		dc := DisplayCategory{
			ID:       category.ID,
			Name:     category.Name,
			Icon:     category.Icon,
			Bindings: make([]DisplayBinding, 0, len(category.Bindings)),
		}
		for _, b := range category.Bindings {
			dc.Bindings = append(dc.Bindings, DisplayBinding{
				Key:         v.formatter.Format(b.Combo),
				KeyRaw:      b.Combo,
				Description: b.Description,
				Command:     b.Command,
			})
		}
		listing.Categories = append(listing.Categories, dc)
	}
	return listing
}

// Text returns a human-readable listing grouped by category, each name
// underlined with "=".
func (v *Views) Text() string {
	var lines []string
	for _, category := range v.cfg.Categories {
		lines = append(lines, "\n"+category.Name)
		lines = append(lines, strings.Repeat("=", utf8.RuneCountInString(category.Name)))
		for _, b := range category.Bindings {
			lines = append(lines, fmt.Sprintf("%-*s %s", textKeyWidth, v.formatter.Format(b.Combo), b.Description))
		}
	}
	return strings.Join(lines, "\n")
}

// Rofi returns one "key → description" line per binding with no grouping.
func (v *Views) Rofi() string {
	var lines []string
	for _, category := range v.cfg.Categories {
		for _, b := range category.Bindings {
			lines = append(lines, fmt.Sprintf("%s → %s", v.formatter.Format(b.Combo), b.Description))
		}
	}
	return strings.Join(lines, "\n")
}

// Search returns bindings whose description or raw key contains query,
// ignoring case.
func (v *Views) Search(query string) []SearchResult {
	query = strings.ToLower(query)

	results := make([]SearchResult, 0)
	for _, category := range v.cfg.Categories {
		for _, b := range category.Bindings {
			if !strings.Contains(strings.ToLower(b.Description), query) &&
				!strings.Contains(strings.ToLower(b.Combo), query) {
				continue
			}
			results = append(results, v.result(category, b))
		}
	}
	return results
}

// FuzzySearch ranks bindings by fuzzy match of query against
// "description raw-key", best first.
func (v *Views) FuzzySearch(query string) []SearchResult {
	source := v.flatten()
	matches := fuzzy.FindFrom(query, source)

	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		entry := source[match.Index]
		results = append(results, v.result(entry.category, entry.binding))
	}
	return results
}

// Counts returns the number of categories and bindings.
func (v *Views) Counts() Counts {
	counts := Counts{Categories: len(v.cfg.Categories)}
	for _, category := range v.cfg.Categories {
		counts.TotalBindings += len(category.Bindings)
	}
	return counts
}

func (v *Views) result(category Category, b Binding) SearchResult {
	return SearchResult{
		Key:         v.formatter.Format(b.Combo),
		KeyRaw:      b.Combo,
		Description: b.Description,
		Command:     b.Command,
		Category:    category.Name,
	}
}

type searchEntry struct {
	category Category
	binding  Binding
}

type searchSource []searchEntry

func (s searchSource) String(i int) string {
	return s[i].binding.Description + " " + s[i].binding.Combo
}

func (s searchSource) Len() int { return len(s) }

func (v *Views) flatten() searchSource {
	var source searchSource
	for _, category := range v.cfg.Categories {
		for _, b := range category.Bindings {
			source = append(source, searchEntry{category: category, binding: b})
		}
	}
	return source
}
