package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	invalidNamePattern = regexp.MustCompile(`\$\{([^}]*[-\s.][^}]*)\}`)
)

// Issue kinds reported by Diagnose.
const (
	IssueUnclosed        = "unclosed placeholder"
	IssueUnbalanced      = "unbalanced braces"
	IssueInvalidName     = "invalid variable name"
	IssueMissingVariable = "missing variable"
)

// Issue is one diagnostic finding.
type Issue struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Detail string `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail != "" {
		return fmt.Sprintf("%s:%d: %s (%s): %s", i.File, i.Line, i.Kind, i.Detail, i.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %s", i.File, i.Line, i.Kind, i.Text)
}

// Report summarizes the diagnostics for one template.
type Report struct {
	Template     string   `json:"template"`
	Source       string   `json:"source"`
	Placeholders int      `json:"placeholders"`
	Issues       []Issue  `json:"issues,omitempty"`
	Missing      []string `json:"missing,omitempty"`
}

// OK reports whether no issue was found.
func (r Report) OK() bool {
	return len(r.Issues) == 0 && len(r.Missing) == 0
}

// Diagnose inspects tmpl line by line for placeholder defects. When known is
// non-nil, well-formed placeholders absent from it are listed in Missing.
// Diagnostics are advisory; nothing here modifies or rejects the template.
func Diagnose(tmpl *Template, known map[string]string) Report {
	file := tmpl.Source
	if file == "" {
		file = tmpl.Name
	}
	report := Report{Template: tmpl.Name, Source: tmpl.Source}

	for i, line := range strings.Split(tmpl.Body, "\n") {
		if !strings.Contains(line, "${") {
			continue
		}
		lineNo := i + 1
		text := strings.TrimSpace(line)
		report.Placeholders += len(placeholderPattern.FindAllString(line, -1))

		if !strings.Contains(line, "}") {
			report.Issues = append(report.Issues, Issue{File: file, Line: lineNo, Kind: IssueUnclosed, Text: text})
		}
		if strings.Count(line, "{") != strings.Count(line, "}") {
			report.Issues = append(report.Issues, Issue{File: file, Line: lineNo, Kind: IssueUnbalanced, Text: text})
		}
		for _, match := range invalidNamePattern.FindAllStringSubmatch(line, -1) {
			report.Issues = append(report.Issues, Issue{File: file, Line: lineNo, Kind: IssueInvalidName, Text: text, Detail: match[1]})
		}
	}

	if known != nil {
		missing := make(map[string]int)
		for _, ph := range scanPlaceholders(tmpl.Body) {
			if ph.Problem != "" {
				continue
			}
			if _, ok := known[ph.Name]; ok {
				continue
			}
			if _, seen := missing[ph.Name]; !seen {
				missing[ph.Name] = ph.Line
				report.Issues = append(report.Issues, Issue{File: file, Line: ph.Line, Kind: IssueMissingVariable, Text: ph.Raw, Detail: ph.Name})
			}
		}
		for name := range missing {
			report.Missing = append(report.Missing, name)
		}
		sort.Strings(report.Missing)
	}

	return report
}
