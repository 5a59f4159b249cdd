// Package manifest describes how the host loads the plugin.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sunshade"
)

// FileName is the conventional manifest file name.
const FileName = "sunshade.yaml"

// Validation errors.
var (
	ErrMissingName   = errors.New("manifest: missing name")
	ErrMissingID     = errors.New("manifest: missing id")
	ErrInvalidAPI    = errors.New("manifest: api is not a semantic version")
	ErrMissingEditor = errors.New("manifest: no editor types")
)

// Manifest is the plugin descriptor read by the host.
type Manifest struct {
	Name       string   `yaml:"name"`
	ID         string   `yaml:"id"`
	API        string   `yaml:"api"`
	Main       string   `yaml:"main"`
	UI         string   `yaml:"ui,omitempty"`
	EditorType []string `yaml:"editorType"`
	Window     Window   `yaml:"window,omitempty"`
}

// Window is the panel window size in pixels.
type Window struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// Default returns the built-in manifest.
func Default() *Manifest {
	return &Manifest{
		Name:       "Sunshade",
		ID:         "sunshade",
		API:        "1.0.0",
		Main:       "sunshade",
		UI:         "panel",
		EditorType: []string{"figma"},
		Window:     Window{Width: sunshade.WindowWidth, Height: sunshade.WindowHeight},
	}
}

// Load decodes a manifest from r. Fields missing from r keep their
// Default values.
func Load(r io.Reader) (*Manifest, error) {
	m := Default()
	if err := yaml.NewDecoder(r).Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	return m, nil
}

// LoadFile reads the manifest at path. A missing file yields Default.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports the first problem found in m.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(m.ID) == "" {
		return ErrMissingID
	}
	if !semver.IsValid(m.canonicalAPI()) {
		return fmt.Errorf("%w: %q", ErrInvalidAPI, m.API)
	}
	if len(m.EditorType) == 0 {
		return ErrMissingEditor
	}
	return nil
}

// Supports reports whether the manifest targets a host API at least as new
// as min (for example "1.0.0" or "v1").
func (m *Manifest) Supports(min string) bool {
	if !strings.HasPrefix(min, "v") {
		min = "v" + min
	}
	api := m.canonicalAPI()
	if !semver.IsValid(api) || !semver.IsValid(min) {
		return false
	}
	return semver.Major(api) == semver.Major(min) && semver.Compare(api, min) >= 0
}

// canonicalAPI returns API with the "v" prefix semver expects.
func (m *Manifest) canonicalAPI() string {
	api := strings.TrimSpace(m.API)
	if api != "" && !strings.HasPrefix(api, "v") {
		api = "v" + api
	}
	return api
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	return enc.Close()
}
