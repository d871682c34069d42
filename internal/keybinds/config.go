// Package keybinds loads the keybinding document and renders it for display
// and for Hyprland.
package keybinds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ErrConfigNotFound is returned when the keybinding document does not exist.
var ErrConfigNotFound = errors.New("keybind config not found")

// DefaultBindType is used when a binding has no type.
const DefaultBindType = "bind"

// Binding is one key combination and what it does.
type Binding struct {
	Combo       string
	Command     string
	Description string
	Type        string
}

// BindType returns Type or DefaultBindType.
func (b Binding) BindType() string {
	if b.Type == "" {
		return DefaultBindType
	}
	return b.Type
}

// Category groups bindings. Bindings keep document order.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Bindings []Binding
}

// Config is a decoded keybind-config.json. Categories keep document order.
type Config struct {
	Categories []Category
}

type rawConfig struct {
	Categories json.RawMessage `json:"categories"`
}

type rawCategory struct {
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Bindings json.RawMessage `json:"bindings"`
}

type rawBinding struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

// Parse decodes a keybinding document. Comments and trailing commas are tolerated.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("decode keybind config: %w", err)
	}

	categories, err := orderedObject(raw.Categories)
	if err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	cfg := &Config{Categories: make([]Category, 0, len(categories))}
	for _, member := range categories {
		var rc rawCategory
		if err := json.Unmarshal(member.Value, &rc); err != nil {
			return nil, fmt.Errorf("decode category %q: %w", member.Key, err)
		}

		bindings, err := orderedObject(rc.Bindings)
		if err != nil {
			return nil, fmt.Errorf("decode bindings of %q: %w", member.Key, err)
		}

		category := Category{
			ID:       member.Key,
			Name:     rc.Name,
			Icon:     rc.Icon,
			Bindings: make([]Binding, 0, len(bindings)),
		}
		for _, b := range bindings {
			var rb rawBinding
			if err := json.Unmarshal(b.Value, &rb); err != nil {
				return nil, fmt.Errorf("decode binding %q in %q: %w", b.Key, member.Key, err)
			}
			category.Bindings = append(category.Bindings, Binding{
				Combo:       b.Key,
				Command:     rb.Command,
				Description: rb.Description,
				Type:        rb.Type,
			})
		}
		cfg.Categories = append(cfg.Categories, category)
	}

	return cfg, nil
}

// Load reads and parses the keybinding document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read keybind config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

type member struct {
	Key   string
	Value json.RawMessage
}

// orderedObject splits a JSON object into its members in document order. A
// repeated key keeps its first position and its last value.
func orderedObject(raw json.RawMessage) ([]member, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var members []member
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, exists := index[key]; exists {
			members[i].Value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}
