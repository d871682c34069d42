package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// TemplateSearchPaths returns template search directories in precedence order.
func TemplateSearchPaths(userDir string) []string {
	paths := make([]string, 0, 2)
	if userDir != "" {
		paths = append(paths, userDir)
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "hypr-system", "templates"))
	return paths
}

// Source resolves template names against directories, then the builtins.
type Source struct {
	dirs    []string
	builtin bool
}

// NewSource searches dirs in order and falls back to the builtin templates.
func NewSource(dirs ...string) *Source {
	return &Source{dirs: dirs, builtin: true}
}

// NewDirSource searches only dirs.
func NewDirSource(dirs ...string) *Source {
	return &Source{dirs: dirs}
}

// Load returns the first template called name, with first-hit precedence.
func (s *Source) Load(name string) (*Template, error) {
	for _, dir := range s.dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name+Ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat template %s: %w", path, err)
		}
		return LoadTemplate(path)
	}

	if s.builtin {
		if tmpl, err := loadBuiltin(name); err == nil {
			return tmpl, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// List returns every available template with first-hit precedence, sorted by name.
func (s *Source) List() ([]*Template, error) {
	seen := make(map[string]*Template)

	for _, dir := range s.dirs {
		templates, err := LoadTemplatesFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, tmpl := range templates {
			if _, exists := seen[tmpl.Name]; exists {
				continue
			}
			seen[tmpl.Name] = tmpl
		}
	}

	if s.builtin {
		builtins, err := LoadBuiltinTemplates()
		if err != nil {
			return nil, err
		}
		for _, tmpl := range builtins {
			if _, exists := seen[tmpl.Name]; exists {
				continue
			}
			seen[tmpl.Name] = tmpl
		}
	}

	resolved := make([]*Template, 0, len(seen))
	for _, tmpl := range seen {
		resolved = append(resolved, tmpl)
	}
	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Name < resolved[j].Name
	})
	return resolved, nil
}
