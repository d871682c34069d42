package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadTemplate reads a single template from disk. The name is the file name
// without the .template extension.
func LoadTemplate(path string) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	return &Template{
		Name:   strings.TrimSuffix(filepath.Base(path), Ext),
		Body:   string(data),
		Source: path,
	}, nil
}

// LoadTemplatesFromDir loads all templates from a directory.
func LoadTemplatesFromDir(dir string) ([]*Template, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Template{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Template{}, nil
		}
		return nil, fmt.Errorf("read templates dir %s: %w", dir, err)
	}

	templates := make([]*Template, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		tmpl, err := LoadTemplate(filepath.Join(dir, entry.Name()))
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
