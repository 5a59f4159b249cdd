package sunshade

import "math"

// Clamp restricts v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// Normalize maps v from [lo, hi] to [0, 1] without clamping.
func Normalize(v, hi, lo float64) float64 {
	return (v - lo) / (hi - lo)
}

// EaseOutQuad is the quadratic deceleration curve t*(2-t).
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}
