package sunshade

import (
	"math"

	"github.com/gogpu/gg"
)

// Geometry describes the light/target relationship a shadow is derived from.
type Geometry struct {
	// Angle is the direction from the light center to the target center,
	// in radians (0 = east, positive towards +Y). Coincident centers yield 0.
	Angle float64

	// Distance is the euclidean distance between the two centers.
	Distance float64

	// BlurFactor grows with distance, clamped to [0.8, 5].
	BlurFactor float64

	// ScaleFactor is the light/target area ratio, clamped to [0.8, 100].
	ScaleFactor float64
}

// Center returns the absolute center of s.
func Center(s Shape) gg.Point {
	p := s.AbsolutePosition()
	w, h := s.Size()
	return gg.Pt(p.X+w/2, p.Y+h/2)
}

// Measure computes the shadow geometry between light and target.
func Measure(light, target Shape) Geometry {
	lc := Center(light)
	tc := Center(target)
	dir := gg.PointToVec2(tc.Sub(lc))
	distance := dir.Length()

	lw, _ := light.Size()
	tw, th := target.Size()
	lightArea := (lw / 2) * (lw / 2) * math.Pi
	targetArea := th * tw

	return Geometry{
		Angle:       dir.Atan2(),
		Distance:    distance,
		BlurFactor:  Clamp(distance/100, 0.8, 5),
		ScaleFactor: Clamp(lightArea*100/targetArea/100, 0.8, 100),
	}
}

// ComputeShadows derives the drop-shadow layers cast by target under light.
// backdrop may be nil; when its top fill is a visible solid paint with a
// hue the shadow is tinted.
//
// Layers are ordered innermost first: opacity falls and offset and blur grow
// along an ease-out curve. ComputeShadows does not modify any shape and
// returns nil when light or target is nil.
func ComputeShadows(light, target, backdrop Shape, opts ...Option) []Layer {
	if light == nil || target == nil {
		return nil
	}
	o := applyOptions(opts)
	g := Measure(light, target)

	base := gg.Black
	if tint, ok := backdropTint(backdrop, o.tintLightness); ok {
		base = tint
	}

	Logger().Debug("shadow geometry",
		"target", target.ID(),
		"angle", g.Angle,
		"distance", g.Distance,
		"blur", g.BlurFactor,
		"scale", g.ScaleFactor,
		"tinted", base != gg.Black)

	cos, sin := math.Cos(g.Angle), math.Sin(g.Angle)
	layers := make([]Layer, o.layers)
	for i := range layers {
		t := EaseOutQuad(Normalize(float64(i), float64(o.layers), 0))

		c := base
		c.A = 0.5 - 0.5*t

		travel := g.Distance * t * o.elevation
		layers[i] = Layer{
			Color:     c,
			Offset:    gg.V2(cos*travel, sin*travel),
			Radius:    100 * g.ScaleFactor * g.BlurFactor * t,
			Spread:    0,
			Visible:   true,
			BlendMode: BlendNormal,
		}
	}
	return layers
}

// ApplyShadows computes the shadow layers and replaces the target's entire
// effect list with them. It is a no-op returning nil when target or light
// is nil.
func ApplyShadows(light, target, backdrop Shape, opts ...Option) []Layer {
	layers := ComputeShadows(light, target, backdrop, opts...)
	if layers == nil {
		return nil
	}
	target.SetEffects(layers)
	return layers
}

// backdropTint returns the tinted shadow base color for backdrop.
func backdropTint(backdrop Shape, lightness float64) (gg.RGBA, bool) {
	if backdrop == nil {
		return gg.RGBA{}, false
	}
	fills := backdrop.Fills()
	if len(fills) == 0 {
		return gg.RGBA{}, false
	}
	top := fills[len(fills)-1]
	if top.Type != PaintSolid || !top.Visible {
		return gg.RGBA{}, false
	}
	return Tint(top.Color, lightness)
}
