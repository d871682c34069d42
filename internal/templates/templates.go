// Package templates loads artifact templates and substitutes ${identifier}
// placeholders with literal values.
package templates

import "errors"

// Ext is the file extension of template files.
const Ext = ".template"

// Template errors.
var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrMissingVariable      = errors.New("missing template variable")
	ErrMalformedPlaceholder = errors.New("malformed placeholder")
)

// Template represents a single artifact template.
type Template struct {
	Name   string `json:"name"`
	Body   string `json:"-"`
	Source string `json:"source"` // file path or "builtin"
}
