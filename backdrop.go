package sunshade

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds returns the absolute bounding box of s.
func Bounds(s Shape) Rect {
	p := s.AbsolutePosition()
	w, h := s.Size()
	return Rect{MinX: p.X, MinY: p.Y, MaxX: p.X + w, MaxY: p.Y + h}
}

// Intersects reports whether r and other overlap with a non-empty area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX < other.MaxX && r.MaxX > other.MinX &&
		r.MinY < other.MaxY && r.MaxY > other.MinY
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// FindBackdrop returns the top-most shape under root whose bounds intersect
// target's and which has at least one visible solid fill. The target, the
// light (as reported by isLight) and their subtrees are never candidates.
// isLight may be nil. FindBackdrop returns nil when nothing qualifies.
//
// Shapes are visited depth-first in paint order, so the last qualifying
// shape is the one painted highest.
func FindBackdrop(root, target Shape, isLight func(Shape) bool) Shape {
	if root == nil || target == nil {
		return nil
	}
	r := backdropResolver{
		target:  target,
		bounds:  Bounds(target),
		isLight: isLight,
	}
	r.visit(root.Children())
	return r.best
}

type backdropResolver struct {
	target  Shape
	bounds  Rect
	isLight func(Shape) bool
	best    Shape
}

func (r *backdropResolver) visit(shapes []Shape) {
	for _, s := range shapes {
		if s == nil || s.Removed() || sameShape(s, r.target) {
			continue
		}
		if r.isLight != nil && r.isLight(s) {
			continue
		}
		if hasSolidFill(s) && Bounds(s).Intersects(r.bounds) {
			r.best = s
		}
		r.visit(s.Children())
	}
}

func hasSolidFill(s Shape) bool {
	for _, f := range s.Fills() {
		if f.Type == PaintSolid && f.Visible {
			return true
		}
	}
	return false
}
