package theme

import "strings"

// ResolutionKind tells how a color value was obtained.
type ResolutionKind int

const (
	// ResolutionLiteral is a value that was already literal (#hex or rgba(...)).
	ResolutionLiteral ResolutionKind = iota
	// ResolutionResolved is a category.name reference that pointed at an entry.
	ResolutionResolved
	// ResolutionPassThrough is anything else, returned unchanged.
	ResolutionPassThrough
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionLiteral:
		return "literal"
	case ResolutionResolved:
		return "resolved"
	case ResolutionPassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one color value.
type Resolution struct {
	Kind     ResolutionKind
	Value    string
	Original string
}

// ResolveColor resolves ref against colors. References resolve exactly one
// hop; the target value is returned as-is even if it is itself a reference.
func ResolveColor(ref string, colors Colors) Resolution {
	if strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "rgba") {
		return Resolution{Kind: ResolutionLiteral, Value: ref, Original: ref}
	}

	parts := strings.Split(ref, ".")
	if len(parts) == 2 {
		if group, ok := colors[parts[0]]; ok {
			if value, ok := group[parts[1]]; ok {
				return Resolution{Kind: ResolutionResolved, Value: value, Original: ref}
			}
		}
	}

	return Resolution{Kind: ResolutionPassThrough, Value: ref, Original: ref}
}

// Resolve returns the literal value for ref, or ref unchanged when it cannot
// be resolved.
func Resolve(ref string, colors Colors) string {
	return ResolveColor(ref, colors).Value
}
