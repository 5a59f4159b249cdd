package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
)

// shadows draws every visible layer of n's effect list, outermost first.
func (r *renderer) shadows(n *canvas.Node) {
	for _, l := range paintOrder(n.Effects()) {
		if !l.Visible || l.Color.A <= 0 {
			continue
		}
		img, x, y, ok := r.layerImage(n, l)
		if !ok {
			continue
		}
		r.dc.DrawImage(gg.ImageBufFromImage(img), float64(x), float64(y))
	}
}

// paintOrder returns layers outermost first. Effect lists are stored
// innermost first, so the tight dark core is composited last.
func paintOrder(layers []sunshade.Layer) []sunshade.Layer {
	out := make([]sunshade.Layer, len(layers))
	for i, l := range layers {
		out[len(layers)-1-i] = l
	}
	return out
}

// layerImage rasterizes one shadow layer of n. It returns the image and
// its top-left pixel, or false when the layer falls outside the canvas.
func (r *renderer) layerImage(n *canvas.Node, l sunshade.Layer) (*image.NRGBA, int, int, bool) {
	sigma := math.Min(l.Radius/2, r.opts.maxBlur)
	margin := math.Ceil(sigma * 3)

	p := n.AbsolutePosition()
	silhouette := sunshade.Rect{
		MinX: p.X + r.ox + l.Offset.X - l.Spread,
		MinY: p.Y + r.oy + l.Offset.Y - l.Spread,
		MaxX: p.X + r.ox + l.Offset.X + n.Width + l.Spread,
		MaxY: p.Y + r.oy + l.Offset.Y + n.Height + l.Spread,
	}
	if silhouette.MaxX <= silhouette.MinX || silhouette.MaxY <= silhouette.MinY {
		return nil, 0, 0, false
	}

	x0 := max(int(math.Floor(silhouette.MinX-margin)), 0)
	y0 := max(int(math.Floor(silhouette.MinY-margin)), 0)
	x1 := min(int(math.Ceil(silhouette.MaxX+margin)), r.dc.Width())
	y1 := min(int(math.Ceil(silhouette.MaxY+margin)), r.dc.Height())
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return nil, 0, 0, false
	}

	alpha := make([]float32, w*h)
	coverage(alpha, w, h, x0, y0, silhouette, n.Kind == canvas.KindEllipse)
	blurAlpha(alpha, w, h, sigma)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	c := color.NRGBA{
		R: channel8(l.Color.R),
		G: channel8(l.Color.G),
		B: channel8(l.Color.B),
	}
	for i, a := range alpha {
		c.A = channel8(float64(a) * l.Color.A)
		if c.A == 0 {
			continue
		}
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img, x0, y0, true
}

// coverage writes 1 for every pixel whose center lies inside the
// silhouette, 0 elsewhere. (x0, y0) is the buffer origin in canvas pixels.
func coverage(alpha []float32, w, h, x0, y0 int, s sunshade.Rect, ellipse bool) {
	cx, cy := (s.MinX+s.MaxX)/2, (s.MinY+s.MaxY)/2
	rx, ry := (s.MaxX-s.MinX)/2, (s.MaxY-s.MinY)/2
	for y := 0; y < h; y++ {
		py := float64(y0+y) + 0.5
		for x := 0; x < w; x++ {
			px := float64(x0+x) + 0.5
			if !s.Contains(px, py) {
				continue
			}
			if ellipse {
				dx, dy := (px-cx)/rx, (py-cy)/ry
				if dx*dx+dy*dy > 1 {
					continue
				}
			}
			alpha[y*w+x] = 1
		}
	}
}

func channel8(v float64) uint8 {
	return uint8(math.Round(sunshade.Clamp(v, 0, 1) * 255))
}
