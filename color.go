package sunshade

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// HSLOf converts an RGB color to hue, saturation and lightness.
// h is in degrees [0, 360), s and l are in [0, 1]. Alpha is ignored.
//
// Achromatic colors (white, grays, black) have no hue: h is NaN and s is 0.
func HSLOf(c gg.RGBA) (h, s, l float64) {
	r, g, b := c.R, c.G, c.B
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2

	d := maxC - minC
	if d == 0 {
		return math.NaN(), 0, l
	}

	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// Tint rebuilds c with its hue and saturation kept and lightness replaced.
// It reports false when c has no hue, in which case the zero color is
// returned. The result is opaque.
func Tint(c gg.RGBA, lightness float64) (gg.RGBA, bool) {
	h, s, _ := HSLOf(c)
	if math.IsNaN(h) {
		return gg.RGBA{}, false
	}
	return gg.HSL(h, s, Clamp(lightness, 0, 1)), true
}

// hexColor formats the RGB channels of c as "#rrggbb".
func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

func channel8(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 255))
}
