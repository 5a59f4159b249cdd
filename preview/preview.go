// Package preview renders a canvas document, drop shadows included,
// with the gg software rasterizer.
//
// Shadow layers are drawn beneath their shape in list order. Each layer is
// the shape silhouette, grown by the layer spread, moved by its offset,
// blurred with sigma = radius/2 and tinted with the layer color.
package preview

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
)

// ErrEmptyViewport is returned when there is nothing to render.
var ErrEmptyViewport = errors.New("preview: empty viewport")

// Defaults.
const (
	DefaultPadding = 40
	DefaultMaxBlur = 24
)

// DefaultBackground is the color behind the page.
var DefaultBackground = gg.RGB(0.96, 0.96, 0.96)

// Option configures Render.
type Option func(*options)

type options struct {
	background gg.RGBA
	padding    float64
	maxBlur    float64
	viewport   *sunshade.Rect
}

func defaultOptions() options {
	return options{
		background: DefaultBackground,
		padding:    DefaultPadding,
		maxBlur:    DefaultMaxBlur,
	}
}

// WithBackground sets the background color.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithPadding sets the margin added around the document extent.
func WithPadding(p float64) Option {
	return func(o *options) { o.padding = max(p, 0) }
}

// WithMaxBlur caps the blur sigma of a shadow layer. Large radii are
// visually flat long before they stop costing time.
func WithMaxBlur(sigma float64) Option {
	return func(o *options) { o.maxBlur = max(sigma, 0) }
}

// WithViewport renders exactly r (page coordinates) instead of the
// padded document extent.
func WithViewport(r sunshade.Rect) Option {
	return func(o *options) { o.viewport = &r }
}

// Render paints doc and returns the drawing context.
// The caller owns the context and should Close it.
func Render(doc *canvas.Document, opts ...Option) (*gg.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vp := doc.Extent()
	if o.viewport != nil {
		vp = *o.viewport
	} else {
		vp.MinX -= o.padding
		vp.MinY -= o.padding
		vp.MaxX += o.padding
		vp.MaxY += o.padding
	}
	w := int(math.Ceil(vp.MaxX - vp.MinX))
	h := int(math.Ceil(vp.MaxY - vp.MinY))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyViewport
	}

	r := &renderer{
		dc:   gg.NewContext(w, h),
		doc:  doc,
		opts: o,
		ox:   -vp.MinX,
		oy:   -vp.MinY,
	}
	r.dc.ClearWithColor(o.background)

	doc.Walk(func(n *canvas.Node) {
		if r.err != nil {
			return
		}
		r.shadows(n)
		r.err = r.node(n)
	})
	if r.err != nil {
		_ = r.dc.Close()
		return nil, fmt.Errorf("preview: %w", r.err)
	}

	sunshade.Logger().Debug("preview rendered", "width", w, "height", h)
	return r.dc, nil
}

type renderer struct {
	dc     *gg.Context
	doc    *canvas.Document
	opts   options
	ox, oy float64
	err    error
}

// node fills n with each visible solid paint, bottom first.
func (r *renderer) node(n *canvas.Node) error {
	for _, f := range n.Fills() {
		if f.Type != sunshade.PaintSolid || !f.Visible {
			continue
		}
		r.dc.SetRGBA(f.Color.R, f.Color.G, f.Color.B, f.Color.A)
		r.path(n)
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}
	if sunshade.IsLight(r.doc, n) {
		r.dc.SetRGBA(0.55, 0.55, 0.55, 1)
		r.dc.SetLineWidth(1)
		r.path(n)
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) path(n *canvas.Node) {
	p := n.AbsolutePosition()
	x, y := p.X+r.ox, p.Y+r.oy
	if n.Kind == canvas.KindEllipse {
		r.dc.DrawEllipse(x+n.Width/2, y+n.Height/2, n.Width/2, n.Height/2)
		return
	}
	r.dc.DrawRectangle(x, y, n.Width, n.Height)
}
