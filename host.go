package sunshade

import "github.com/gogpu/gg"

// PaintType identifies the kind of a fill paint.
type PaintType int

const (
	// PaintSolid is a single flat color.
	PaintSolid PaintType = iota
	// PaintGradient is any gradient fill. It carries no single color.
	PaintGradient
	// PaintImage is an image fill.
	PaintImage
)

// String returns the host-facing name of the paint type.
func (t PaintType) String() string {
	switch t {
	case PaintSolid:
		return "SOLID"
	case PaintGradient:
		return "GRADIENT"
	case PaintImage:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// Paint is one entry of a shape's fill list.
// Color is meaningful only for PaintSolid.
type Paint struct {
	Type    PaintType
	Color   gg.RGBA
	Visible bool
}

// Solid returns a visible solid paint.
func Solid(c gg.RGBA) Paint {
	return Paint{Type: PaintSolid, Color: c, Visible: true}
}

// Shape is a node owned by the host canvas.
//
// Positions are in canvas units. AbsolutePosition must account for every
// ancestor: local coordinates are parent-relative once a shape is nested.
type Shape interface {
	// ID returns an identifier that is unique within the document.
	ID() string

	// AbsolutePosition returns the top-left corner in page coordinates.
	AbsolutePosition() gg.Point

	// Size returns the width and height of the shape.
	Size() (width, height float64)

	// Fills returns the fill paints, bottom-most first.
	Fills() []Paint

	// SetFills replaces the fill paints.
	SetFills(fills []Paint)

	// Effects returns the current effect list.
	Effects() []Layer

	// SetEffects replaces the entire effect list.
	SetEffects(effects []Layer)

	// Children returns the child shapes in paint order, bottom-most first.
	Children() []Shape

	// Removed reports whether the shape has been deleted from the document.
	Removed() bool
}

// Tagger attaches out-of-band string metadata to shapes.
// An unset key reads as the empty string.
type Tagger interface {
	Tag(s Shape, key string) string
	SetTag(s Shape, key, value string)
}

// ShapeFactory creates and removes shapes on the current page.
type ShapeFactory interface {
	CreateEllipse() (Shape, error)
	Remove(s Shape) error
}

// SelectionSource exposes the host selection and its change notifications.
type SelectionSource interface {
	// Selection returns the selected shapes, primary selection first.
	Selection() []Shape

	// OnSelectionChange registers fn to run on every selection change.
	// The returned function unregisters it.
	OnSelectionChange(fn func()) (cancel func())
}

// CloseSource notifies when the host shuts the plugin down.
type CloseSource interface {
	OnClose(fn func()) (cancel func())
}

// Host is the full set of canvas capabilities the plugin relies on.
type Host interface {
	ShapeFactory
	Tagger
	SelectionSource
	CloseSource

	// Root returns the current page.
	Root() Shape
}

// sameShape reports whether a and b refer to the same host shape.
func sameShape(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
