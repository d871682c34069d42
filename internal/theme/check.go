package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorIssue describes a color entry that will not render as a color.
type ColorIssue struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Problem  string `json:"problem"`
}

func (i ColorIssue) String() string {
	return fmt.Sprintf("colors.%s.%s = %q: %s", i.Category, i.Name, i.Value, i.Problem)
}

// CheckColors reports references that fell through unresolved and hex
// values that do not parse. rgba(...) literals are not inspected.
func CheckColors(doc *Document) []ColorIssue {
	raw := doc.Colors()

	var issues []ColorIssue
	for category, group := range raw {
		for name, value := range group {
			res := ResolveColor(value, raw)
			switch res.Kind {
			case ResolutionPassThrough:
				issues = append(issues, ColorIssue{Category: category, Name: name, Value: value, Problem: "unresolved reference"})
				continue
			case ResolutionResolved:
				if next := ResolveColor(res.Value, raw); next.Kind == ResolutionResolved {
					issues = append(issues, ColorIssue{Category: category, Name: name, Value: value, Problem: fmt.Sprintf("reference chain to %q is not followed", res.Value)})
					continue
				}
			}
			if strings.HasPrefix(res.Value, "#") {
				if _, err := parseHex(res.Value); err != nil {
					issues = append(issues, ColorIssue{Category: category, Name: name, Value: value, Problem: "invalid hex color"})
				}
			}
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Category != issues[j].Category {
			return issues[i].Category < issues[j].Category
		}
		return issues[i].Name < issues[j].Name
	})
	return issues
}

// parseHex accepts #rgb, #rrggbb and #rrggbbaa.
func parseHex(value string) (colorful.Color, error) {
	if len(value) == 9 {
		value = value[:7]
	}
	return colorful.Hex(value)
}
