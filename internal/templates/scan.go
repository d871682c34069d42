package templates

import "strings"

// placeholder is one "${" occurrence in a template body.
type placeholder struct {
	Name  string
	Raw   string
	Line  int
	Start int
	End   int // offset just past Raw
	// Problem is empty for a well-formed placeholder.
	Problem string
}

// scanPlaceholders finds every "${" in body. A placeholder must close on the
// same line and wrap a valid identifier; anything else is recorded with a
// Problem. A "$" not followed by "{" is plain text.
func scanPlaceholders(body string) []placeholder {
	var found []placeholder
	line := 1
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\n':
			line++
			continue
		case '$':
		default:
			continue
		}
		if i+1 >= len(body) || body[i+1] != '{' {
			continue
		}

		lineEnd := strings.IndexByte(body[i:], '\n')
		if lineEnd < 0 {
			lineEnd = len(body)
		} else {
			lineEnd += i
		}

		closing := strings.IndexByte(body[i+2:lineEnd], '}')
		if closing < 0 {
			found = append(found, placeholder{
				Raw:     body[i:lineEnd],
				Line:    line,
				Start:   i,
				End:     lineEnd,
				Problem: "unclosed placeholder",
			})
			i = lineEnd - 1
			continue
		}

		end := i + 2 + closing + 1
		ph := placeholder{
			Name:  body[i+2 : end-1],
			Raw:   body[i:end],
			Line:  line,
			Start: i,
			End:   end,
		}
		if !IsIdentifier(ph.Name) {
			ph.Problem = "invalid variable name"
		}
		found = append(found, ph)
		i = end - 1
	}
	return found
}

// IsIdentifier reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
