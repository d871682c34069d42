// Package theme loads the central theme document and turns it into the flat
// variable mapping consumed by templates.
package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrConfigNotFound is returned when the theme document does not exist.
var ErrConfigNotFound = errors.New("theme config not found")

// DefaultWorkspaceMode is the workspace mode assumed when the document has none.
const DefaultWorkspaceMode = "virtual_desktops"

// Colors maps category -> name -> value.
type Colors map[string]map[string]string

// Document is a decoded theme-config.json. Numbers keep their literal text.
type Document struct {
	root map[string]any
}

// Parse decodes a theme document. Comments and trailing commas are tolerated.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode theme config: %w", err)
	}
	if root == nil {
		root = make(map[string]any)
	}
	return &Document{root: root}, nil
}

// Load reads and parses the theme document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read theme config %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Lookup walks nested objects along path.
func (d *Document) Lookup(path ...string) (any, bool) {
	if d == nil {
		return nil, false
	}
	var current any = d.root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Section returns a nested object, or nil when absent or not an object.
func (d *Document) Section(path ...string) map[string]any {
	value, ok := d.Lookup(path...)
	if !ok {
		return nil
	}
	obj, _ := value.(map[string]any)
	return obj
}

// String returns the scalar at path formatted for templates. A present
// null formats as "".
func (d *Document) String(path ...string) (string, bool) {
	value, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}
	return FormatScalar(value), true
}

// Colors returns the raw (unresolved) color tree.
func (d *Document) Colors() Colors {
	colors := make(Colors)
	for category, group := range d.Section("colors") {
		entries, ok := group.(map[string]any)
		if !ok {
			continue
		}
		colors[category] = make(map[string]string, len(entries))
		for name, value := range entries {
			colors[category][name] = FormatScalar(value)
		}
	}
	return colors
}

// ResolvedColors returns the color tree with every reference resolved one hop.
func (d *Document) ResolvedColors() Colors {
	raw := d.Colors()
	resolved := make(Colors, len(raw))
	for category, group := range raw {
		resolved[category] = make(map[string]string, len(group))
		for name, value := range group {
			resolved[category][name] = Resolve(value, raw)
		}
	}
	return resolved
}

// WorkspaceMode returns workspaces.mode or DefaultWorkspaceMode.
func (d *Document) WorkspaceMode() string {
	if mode, ok := d.String("workspaces", "mode"); ok && strings.TrimSpace(mode) != "" {
		return strings.TrimSpace(mode)
	}
	return DefaultWorkspaceMode
}

// SetWorkspaceMode overwrites workspaces.mode, creating the section if needed.
func (d *Document) SetWorkspaceMode(mode string) {
	section := d.Section("workspaces")
	if section == nil {
		section = make(map[string]any)
		d.root["workspaces"] = section
	}
	section["mode"] = mode
}

// Marshal encodes the document as indented JSON.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode theme config: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatScalar renders a decoded JSON value as template text.
// Booleans become "true"/"false"; numbers keep their literal form.
func FormatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// SortedKeys returns the keys of an object in lexical order.
func SortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
