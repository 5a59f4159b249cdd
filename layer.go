package sunshade

import "github.com/gogpu/gg"

// EffectDropShadow is the host effect type written for every Layer.
const EffectDropShadow = "DROP_SHADOW"

// BlendMode selects how an effect is composited.
type BlendMode int

const (
	// BlendNormal is plain source-over compositing.
	BlendNormal BlendMode = iota
)

// String returns the host-facing name of the blend mode.
func (m BlendMode) String() string {
	if m == BlendNormal {
		return "NORMAL"
	}
	return "UNKNOWN"
}

// Layer is one drop-shadow pass.
type Layer struct {
	// Color is the shadow color. A carries the layer opacity.
	Color gg.RGBA

	// Offset is the shadow displacement from the shape.
	Offset gg.Vec2

	// Radius is the blur radius.
	Radius float64

	// Spread grows (or shrinks) the shadow silhouette before blurring.
	Spread float64

	Visible   bool
	BlendMode BlendMode
}

// Type returns the host effect type of the layer.
func (Layer) Type() string { return EffectDropShadow }
