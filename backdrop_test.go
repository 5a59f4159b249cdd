package sunshade

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 15, 15}, true},
		{"contained", Rect{2, 2, 3, 3}, true},
		{"containing", Rect{-5, -5, 20, 20}, true},
		{"touching edge", Rect{10, 0, 20, 10}, false},
		{"touching corner", Rect{10, 10, 20, 20}, false},
		{"disjoint", Rect{30, 30, 40, 40}, false},
		{"overlap x only", Rect{5, 20, 15, 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestFindBackdrop(t *testing.T) {
	h := newFakeHost()
	light := h.root.add(h.newShape(0, 0, 500, 500, LightFill))
	h.SetTag(light, LightTag, LightTagValue)

	bottom := h.root.add(h.newShape(0, 0, 400, 400, Solid(gg.Blue)))
	target := h.root.add(h.newShape(100, 100, 50, 50, Solid(gg.White)))
	_ = h.root.add(h.newShape(300, 300, 50, 50, Solid(gg.Green))) // no overlap
	top := h.root.add(h.newShape(120, 120, 100, 100, Solid(gg.Red)))

	isLight := func(s Shape) bool { return IsLight(h, s) }
	if got := FindBackdrop(h.root, target, isLight); got != Shape(top) {
		t.Errorf("FindBackdrop() = %v, want top-most red", got)
	}

	top.removed = true
	if got := FindBackdrop(h.root, target, isLight); got != Shape(bottom) {
		t.Errorf("FindBackdrop() = %v, want blue after removing red", got)
	}
}

func TestFindBackdrop_SkipsIneligible(t *testing.T) {
	h := newFakeHost()
	light := h.root.add(h.newShape(0, 0, 500, 500, LightFill))
	h.SetTag(light, LightTag, LightTagValue)
	// A child of the light is never visited.
	light.add(h.newShape(0, 0, 500, 500, Solid(gg.Red)))

	target := h.root.add(h.newShape(100, 100, 50, 50, Solid(gg.White)))
	// Target content does not count as its backdrop.
	target.add(h.newShape(0, 0, 50, 50, Solid(gg.Green)))

	h.root.add(h.newShape(90, 90, 100, 100))                                            // no fills
	h.root.add(h.newShape(90, 90, 100, 100, Paint{Type: PaintGradient, Visible: true})) // no solid
	h.root.add(h.newShape(90, 90, 100, 100, Paint{Type: PaintSolid, Color: gg.Red}))    // hidden
	h.root.add(h.newShape(150, 100, 50, 50, Solid(gg.Red)))                             // edge only

	isLight := func(s Shape) bool { return IsLight(h, s) }
	if got := FindBackdrop(h.root, target, isLight); got != nil {
		t.Errorf("FindBackdrop() = %v, want nil", got.ID())
	}
}

func TestFindBackdrop_NestedPaintOrder(t *testing.T) {
	h := newFakeHost()
	frame := h.root.add(h.newShape(0, 0, 400, 400, Solid(gg.White)))
	inner := frame.add(h.newShape(50, 50, 200, 200, Solid(gg.Blue)))
	target := h.root.add(h.newShape(100, 100, 50, 50, Solid(gg.White)))

	// The child paints over its frame.
	if got := FindBackdrop(h.root, target, nil); got != Shape(inner) {
		t.Errorf("FindBackdrop() = %v, want nested blue", got)
	}

	// A later sibling of the frame paints over the frame's children.
	later := h.root.add(h.newShape(0, 0, 400, 400, Solid(gg.Yellow)))
	if got := FindBackdrop(h.root, target, nil); got != Shape(later) {
		t.Errorf("FindBackdrop() = %v, want later sibling", got)
	}
}

func TestFindBackdrop_NilInputs(t *testing.T) {
	h := newFakeHost()
	target := h.root.add(h.newShape(0, 0, 10, 10))
	if FindBackdrop(nil, target, nil) != nil {
		t.Error("nil root should yield nil")
	}
	if FindBackdrop(h.root, nil, nil) != nil {
		t.Error("nil target should yield nil")
	}
}
