// Package generator renders every configured artifact from the theme and
// keybind documents and reloads the desktop afterwards.
package generator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrArtifactNameRequired is returned when a manifest entry has no name.
	ErrArtifactNameRequired = errors.New("artifact name is required")
	// ErrArtifactNotFound is returned when an artifact name is not in the manifest.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// ManifestSourceBuiltin marks the default manifest.
const ManifestSourceBuiltin = "builtin"

// Kind selects how an artifact is produced.
type Kind string

const (
	// KindTemplate renders a template with the flattened variables.
	KindTemplate Kind = "template"
	// KindBindings writes the Hyprland bindings from the keybind config.
	KindBindings Kind = "bindings"
	// KindWaybar writes the Waybar JSON config from the theme document.
	KindWaybar Kind = "waybar"
)

// ArtifactValidationError describes an invalid manifest entry.
type ArtifactValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *ArtifactValidationError) Error() string {
	return fmt.Sprintf("artifacts[%d].%s: %s", e.Index, e.Field, e.Message)
}

// Artifact is one generated file.
type Artifact struct {
	Name string `yaml:"name" json:"name"`
	Kind Kind   `yaml:"kind,omitempty" json:"kind"`
	// Template defaults to Name for template artifacts.
	Template string `yaml:"template,omitempty" json:"template,omitempty"`
	// Output is relative to the output dir unless absolute.
	Output string `yaml:"output" json:"output"`
}

// TemplateName returns the template this artifact renders.
func (a Artifact) TemplateName() string {
	if a.Template != "" {
		return a.Template
	}
	return a.Name
}

// Manifest lists the artifacts of a generation run in order.
type Manifest struct {
	Artifacts []Artifact `yaml:"artifacts"`
	Source    string     `yaml:"-"`
}

// DefaultArtifacts returns the standard artifact set.
func DefaultArtifacts() []Artifact {
	return []Artifact{
		{Name: "hyprland", Kind: KindTemplate, Output: "hypr/hyprland.conf"},
		{Name: "hypr-environment", Kind: KindTemplate, Output: "hypr/configs/environment.conf"},
		{Name: "hypr-animations", Kind: KindTemplate, Output: "hypr/configs/animations.conf"},
		{Name: "hypr-rules", Kind: KindTemplate, Output: "hypr/configs/rules.conf"},
		{Name: "hypr-monitors", Kind: KindTemplate, Output: "hypr/configs/monitors.conf"},
		{Name: "hypr-autostart", Kind: KindTemplate, Output: "hypr/configs/autostart.conf"},
		{Name: "hypr-workspaces", Kind: KindTemplate, Output: "hypr/configs/workspaces.conf"},
		{Name: "waybar-css", Kind: KindTemplate, Output: "waybar/style.css"},
		{Name: "rofi-theme", Kind: KindTemplate, Output: "rofi/themes/cyberpunk-medieval.rasi"},
		{Name: "dunst", Kind: KindTemplate, Output: "dunst/dunstrc"},
		{Name: "kitty", Kind: KindTemplate, Output: "kitty/kitty.conf"},
		{Name: "bindings", Kind: KindBindings, Output: "hypr/configs/bindings.conf"},
		{Name: "waybar-config", Kind: KindWaybar, Output: "waybar/config.jsonc"},
	}
}

// DefaultManifest returns the builtin manifest.
func DefaultManifest() *Manifest {
	return &Manifest{Artifacts: DefaultArtifacts(), Source: ManifestSourceBuiltin}
}

// LoadManifest reads artifacts.yaml and merges it over the defaults: entries
// with a known name replace it in place, new names are appended. A missing
// file yields the default manifest.
func LoadManifest(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultManifest(), nil
		}
		return nil, fmt.Errorf("read artifact manifest %s: %w", path, err)
	}

	overrides, err := parseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parse artifact manifest %s: %w", path, err)
	}

	manifest := DefaultManifest()
	manifest.Source = path
	for _, artifact := range overrides.Artifacts {
		manifest.set(artifact)
	}
	return manifest, nil
}

func parseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	for i := range manifest.Artifacts {
		a := &manifest.Artifacts[i]
		a.Name = strings.TrimSpace(a.Name)
		a.Output = strings.TrimSpace(a.Output)
		if a.Kind == "" {
			a.Kind = KindTemplate
		}
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Validate checks every entry.
func (m *Manifest) Validate() error {
	for i, a := range m.Artifacts {
		if a.Name == "" {
			return &ArtifactValidationError{Index: i, Field: "name", Message: ErrArtifactNameRequired.Error()}
		}
		if a.Output == "" {
			return &ArtifactValidationError{Index: i, Field: "output", Message: "output path is required"}
		}
		switch a.Kind {
		case KindTemplate, KindBindings, KindWaybar:
		default:
			return &ArtifactValidationError{Index: i, Field: "kind", Message: fmt.Sprintf("unknown kind %q", a.Kind)}
		}
	}
	return nil
}

// Lookup returns the artifact called name.
func (m *Manifest) Lookup(name string) (Artifact, error) {
	for _, a := range m.Artifacts {
		if a.Name == name {
			return a, nil
		}
	}
	return Artifact{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
}

func (m *Manifest) set(artifact Artifact) {
	for i, existing := range m.Artifacts {
		if existing.Name == artifact.Name {
			m.Artifacts[i] = artifact
			return
		}
	}
	m.Artifacts = append(m.Artifacts, artifact)
}
