package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed builtin/*.template
var builtinFS embed.FS

// BuiltinSource marks templates bundled with the binary.
const BuiltinSource = "builtin"

// LoadBuiltinTemplates returns the built-in templates bundled with hyprsystem.
func LoadBuiltinTemplates() ([]*Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}

	templates := make([]*Template, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		tmpl, err := loadBuiltin(strings.TrimSuffix(entry.Name(), Ext))
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

func loadBuiltin(name string) (*Template, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + Ext)
	if err != nil {
		return nil, fmt.Errorf("read builtin template %s: %w", name, err)
	}
	return &Template{Name: name, Body: string(data), Source: BuiltinSource}, nil
}
