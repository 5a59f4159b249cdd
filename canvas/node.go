package canvas

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/sunshade"
)

// Kind is the node type.
type Kind int

const (
	// KindPage is the document root.
	KindPage Kind = iota
	// KindFrame is a container whose children are positioned relative to it.
	KindFrame
	// KindRectangle is an axis-aligned rectangle.
	KindRectangle
	// KindEllipse is an ellipse inscribed in the node bounds.
	KindEllipse
)

// String returns the lower-case kind name used by scene files.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindFrame:
		return "frame"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Node is a shape in a Document. X and Y are relative to the parent.
type Node struct {
	Name string
	Kind Kind

	X, Y          float64
	Width, Height float64

	id       string
	doc      *Document
	parent   *Node
	children []*Node
	fills    []sunshade.Paint
	effects  []sunshade.Layer
	removed  bool
}

var _ sunshade.Shape = (*Node)(nil)

// ID returns the document-unique node identifier.
func (n *Node) ID() string { return n.id }

// Parent returns the parent node, or nil for the page and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Nodes returns the child nodes in paint order.
func (n *Node) Nodes() []*Node { return n.children }

// AbsolutePosition accumulates the offsets of every ancestor.
func (n *Node) AbsolutePosition() gg.Point {
	p := gg.Pt(n.X, n.Y)
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(gg.Pt(a.X, a.Y))
	}
	return p
}

// Size returns the node width and height.
func (n *Node) Size() (float64, float64) { return n.Width, n.Height }

// Bounds returns the absolute bounding box.
func (n *Node) Bounds() sunshade.Rect { return sunshade.Bounds(n) }

// Fills returns a copy of the fill list.
func (n *Node) Fills() []sunshade.Paint {
	return append([]sunshade.Paint(nil), n.fills...)
}

// SetFills replaces the fill list.
func (n *Node) SetFills(fills []sunshade.Paint) {
	n.fills = append([]sunshade.Paint(nil), fills...)
}

// Effects returns a copy of the effect list.
func (n *Node) Effects() []sunshade.Layer {
	return append([]sunshade.Layer(nil), n.effects...)
}

// SetEffects replaces the effect list.
func (n *Node) SetEffects(effects []sunshade.Layer) {
	n.effects = append([]sunshade.Layer(nil), effects...)
}

// Children returns the child nodes as shapes.
func (n *Node) Children() []sunshade.Shape {
	out := make([]sunshade.Shape, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Removed reports whether the node was removed from its document.
func (n *Node) Removed() bool { return n.removed }

// MoveTo sets the parent-relative position.
func (n *Node) MoveTo(x, y float64) {
	n.X, n.Y = x, y
}

// MoveBy translates the node.
func (n *Node) MoveBy(dx, dy float64) {
	n.X += dx
	n.Y += dy
}

// Resize sets the node size.
func (n *Node) Resize(w, h float64) {
	n.Width, n.Height = w, h
}

// Contains reports whether the absolute point lies inside the node shape.
func (n *Node) Contains(x, y float64) bool {
	b := n.Bounds()
	if !b.Contains(x, y) {
		return false
	}
	if n.Kind != KindEllipse {
		return true
	}
	rx, ry := n.Width/2, n.Height/2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (x - (b.MinX + rx)) / rx
	dy := (y - (b.MinY + ry)) / ry
	return dx*dx+dy*dy <= 1
}

// walk visits n's descendants depth-first in paint order.
func (n *Node) walk(fn func(*Node) bool) bool {
	for _, c := range n.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) markRemoved() {
	n.removed = true
	for _, c := range n.children {
		c.markRemoved()
	}
}
