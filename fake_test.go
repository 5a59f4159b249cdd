package sunshade

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// fakeShape is a minimal Shape with parent-relative coordinates.
type fakeShape struct {
	id         string
	x, y       float64
	w, h       float64
	parent     *fakeShape
	fills      []Paint
	effects    []Layer
	children   []*fakeShape
	removed    bool
	effectSets int
}

func (s *fakeShape) ID() string { return s.id }

func (s *fakeShape) AbsolutePosition() gg.Point {
	p := gg.Pt(s.x, s.y)
	for a := s.parent; a != nil; a = a.parent {
		p = p.Add(gg.Pt(a.x, a.y))
	}
	return p
}

func (s *fakeShape) Size() (float64, float64) { return s.w, s.h }
func (s *fakeShape) Fills() []Paint           { return s.fills }
func (s *fakeShape) SetFills(f []Paint)       { s.fills = f }
func (s *fakeShape) Effects() []Layer         { return s.effects }
func (s *fakeShape) Removed() bool            { return s.removed }

func (s *fakeShape) SetEffects(e []Layer) {
	s.effects = e
	s.effectSets++
}

func (s *fakeShape) Children() []Shape {
	out := make([]Shape, len(s.children))
	for i, c := range s.children {
		out[i] = c
	}
	return out
}

func (s *fakeShape) add(c *fakeShape) *fakeShape {
	c.parent = s
	s.children = append(s.children, c)
	return c
}

// fakeHost implements Host over a tree of fakeShapes.
type fakeHost struct {
	TagTable

	root      *fakeShape
	selection []Shape
	onSelect  []func()
	onClose   []func()
	nextID    int
	removeErr error
	removed   []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{root: &fakeShape{id: "page"}}
}

func (h *fakeHost) Root() Shape { return h.root }

func (h *fakeHost) newShape(x, y, w, hh float64, fills ...Paint) *fakeShape {
	h.nextID++
	return &fakeShape{id: fmt.Sprintf("0:%d", h.nextID), x: x, y: y, w: w, h: hh, fills: fills}
}

func (h *fakeHost) CreateEllipse() (Shape, error) {
	return h.root.add(h.newShape(0, 0, 100, 100)), nil
}

func (h *fakeHost) Remove(s Shape) error {
	if h.removeErr != nil {
		return h.removeErr
	}
	fs := s.(*fakeShape)
	if fs.removed {
		return ErrShapeRemoved
	}
	fs.removed = true
	h.removed = append(h.removed, fs.id)
	return nil
}

func (h *fakeHost) Selection() []Shape { return h.selection }

func (h *fakeHost) OnSelectionChange(fn func()) func() {
	h.onSelect = append(h.onSelect, fn)
	i := len(h.onSelect) - 1
	return func() { h.onSelect[i] = nil }
}

func (h *fakeHost) OnClose(fn func()) func() {
	h.onClose = append(h.onClose, fn)
	i := len(h.onClose) - 1
	return func() { h.onClose[i] = nil }
}

func (h *fakeHost) selectShapes(shapes ...Shape) {
	h.selection = shapes
	for _, fn := range append([]func(){}, h.onSelect...) {
		if fn != nil {
			fn()
		}
	}
}

func (h *fakeHost) close() {
	for _, fn := range append([]func(){}, h.onClose...) {
		if fn != nil {
			fn()
		}
	}
}

// recorder collects emitted summaries.
type recorder struct {
	got []Summary
}

func (r *recorder) Emit(s Summary) { r.got = append(r.got, s) }

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func near(a, b float64) bool {
	return absDiff(a, b) < 1e-9
}
