package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sunshade"
)

// LightName refers to the session light in scene steps.
const LightName = "light"

var (
	// ErrUnknownKind is returned for a node kind a scene cannot build.
	ErrUnknownKind = errors.New("canvas: unknown node kind")

	// ErrInvalidFill is returned for a fill that is not a hex color.
	ErrInvalidFill = errors.New("canvas: invalid fill")

	// ErrUnknownNode is returned when a step names a node that does not exist.
	ErrUnknownNode = errors.New("canvas: unknown node")
)

// Scene is a YAML scene fixture: an initial page plus a scripted session.
type Scene struct {
	Light *Placement `yaml:"light,omitempty"`
	Nodes []NodeSpec `yaml:"nodes"`
	Steps []Step     `yaml:"steps,omitempty"`
}

// Placement positions and sizes a node.
type Placement struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Placement `yaml:",inline"`
	Fills     []string   `yaml:"fills,omitempty"`
	Children  []NodeSpec `yaml:"children,omitempty"`
}

// Step is one scripted user action. Exactly one field is expected.
type Step struct {
	// Select selects the named nodes, primary first.
	Select []string `yaml:"select,omitempty"`

	// Deselect clears the selection.
	Deselect bool `yaml:"deselect,omitempty"`

	// Move places a named node at a parent-relative position.
	Move *Move `yaml:"move,omitempty"`

	// Remove deletes a named node.
	Remove string `yaml:"remove,omitempty"`
}

// Move is the payload of a move step.
type Move struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Load decodes a scene fixture and builds its document.
func Load(r io.Reader) (*Document, *Scene, error) {
	var sc Scene
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("canvas: decode scene: %w", err)
	}
	d := New()
	for _, spec := range sc.Nodes {
		if err := d.build(d.page, spec); err != nil {
			return nil, nil, err
		}
	}
	return d, &sc, nil
}

func (d *Document) build(parent *Node, spec NodeSpec) error {
	kind, err := parseKind(spec.Kind)
	if err != nil {
		return fmt.Errorf("canvas: node %q: %w", spec.Name, err)
	}
	fills := make([]sunshade.Paint, 0, len(spec.Fills))
	for _, f := range spec.Fills {
		p, err := ParsePaint(f)
		if err != nil {
			return fmt.Errorf("canvas: node %q: %w", spec.Name, err)
		}
		fills = append(fills, p)
	}
	p := spec.Placement
	n := d.Add(parent, kind, spec.Name, p.X, p.Y, p.Width, p.Height, fills...)
	for _, child := range spec.Children {
		if err := d.build(n, child); err != nil {
			return err
		}
	}
	return nil
}

func parseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rectangle", "rect":
		return KindRectangle, nil
	case "frame":
		return KindFrame, nil
	case "ellipse":
		return KindEllipse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ParsePaint parses a fill: a hex color ("#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", '#' optional) or the word "gradient".
// A hex alpha below one is kept in the paint color.
func ParsePaint(s string) (sunshade.Paint, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "gradient") {
		return sunshade.Paint{Type: sunshade.PaintGradient, Visible: true}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return sunshade.Paint{}, fmt.Errorf("%w: %q", ErrInvalidFill, s)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return sunshade.Paint{}, fmt.Errorf("%w: %q", ErrInvalidFill, s)
		}
	}
	return sunshade.Solid(gg.Hex(hex)), nil
}

// Apply performs a scripted step. light is the session light, addressed
// by LightName.
func (d *Document) Apply(step Step, light sunshade.Shape) error {
	resolve := func(name string) (*Node, error) {
		if name == LightName && light != nil {
			if n := d.Node(light.ID()); n != nil {
				return n, nil
			}
		}
		if n := d.Find(name); n != nil {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	switch {
	case step.Move != nil:
		n, err := resolve(step.Move.Name)
		if err != nil {
			return err
		}
		n.MoveTo(step.Move.X, step.Move.Y)
	case step.Remove != "":
		n, err := resolve(step.Remove)
		if err != nil {
			return err
		}
		return d.Remove(n)
	case step.Deselect:
		d.Select()
	case len(step.Select) > 0:
		nodes := make([]*Node, 0, len(step.Select))
		for _, name := range step.Select {
			n, err := resolve(name)
			if err != nil {
				return err
			}
			nodes = append(nodes, n)
		}
		d.Select(nodes...)
	}
	return nil
}

// Place moves and resizes the session light to the scene's light placement.
func (sc *Scene) Place(d *Document, light sunshade.Shape) {
	if sc.Light == nil || light == nil {
		return
	}
	n := d.Node(light.ID())
	if n == nil {
		return
	}
	n.MoveTo(sc.Light.X, sc.Light.Y)
	if sc.Light.Width > 0 && sc.Light.Height > 0 {
		n.Resize(sc.Light.Width, sc.Light.Height)
	}
}
