package templates

import (
	"fmt"
	"strings"
)

// MissingVariableError reports a placeholder with no value.
type MissingVariableError struct {
	Template string
	Name     string
	Line     int
	Raw      string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template %q line %d: missing variable %q in %s", e.Template, e.Line, e.Name, e.Raw)
}

func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }

// MalformedPlaceholderError reports a "${" that is not a valid placeholder.
type MalformedPlaceholderError struct {
	Template string
	Line     int
	Raw      string
	Problem  string
}

func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("template %q line %d: %s: %s", e.Template, e.Line, e.Problem, e.Raw)
}

func (e *MalformedPlaceholderError) Unwrap() error { return ErrMalformedPlaceholder }

// RenderTemplate renders a template with the provided variables.
//
// Substitution is a single pass: substituted values are not scanned again.
// The first missing or malformed placeholder in document order fails the
// whole render.
func RenderTemplate(tmpl *Template, vars map[string]string) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("template is required")
	}

	placeholders := scanPlaceholders(tmpl.Body)
	if len(placeholders) == 0 {
		return tmpl.Body, nil
	}

	var out strings.Builder
	out.Grow(len(tmpl.Body))

	last := 0
	for _, ph := range placeholders {
		if ph.Problem != "" {
			return "", &MalformedPlaceholderError{Template: tmpl.Name, Line: ph.Line, Raw: ph.Raw, Problem: ph.Problem}
		}
		value, ok := vars[ph.Name]
		if !ok {
			return "", &MissingVariableError{Template: tmpl.Name, Name: ph.Name, Line: ph.Line, Raw: ph.Raw}
		}
		out.WriteString(tmpl.Body[last:ph.Start])
		out.WriteString(value)
		last = ph.End
	}
	out.WriteString(tmpl.Body[last:])

	return out.String(), nil
}

// Render substitutes vars into text.
func Render(text string, vars map[string]string) (string, error) {
	return RenderTemplate(&Template{Name: "inline", Body: text}, vars)
}

// Variables returns the distinct well-formed placeholder names in tmpl in
// order of first use.
func Variables(tmpl *Template) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, ph := range scanPlaceholders(tmpl.Body) {
		if ph.Problem != "" {
			continue
		}
		if _, ok := seen[ph.Name]; ok {
			continue
		}
		seen[ph.Name] = struct{}{}
		names = append(names, ph.Name)
	}
	return names
}
