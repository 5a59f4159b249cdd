package sunshade

import "github.com/gogpu/gg"

// Summary is the per-field mean of a set of shadow layers.
// It is a display convenience; rendering always uses the full layer list.
type Summary struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Blur    float64 `json:"blur" yaml:"blur"`
	Spread  float64 `json:"spread" yaml:"spread"`
	R       float64 `json:"r" yaml:"r"`
	G       float64 `json:"g" yaml:"g"`
	B       float64 `json:"b" yaml:"b"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// Summarize averages offset, blur radius, spread, color and alpha across
// layers. An empty slice yields the zero Summary.
func Summarize(layers []Layer) Summary {
	var s Summary
	if len(layers) == 0 {
		return s
	}
	for _, l := range layers {
		s.X += l.Offset.X
		s.Y += l.Offset.Y
		s.Blur += l.Radius
		s.Spread += l.Spread
		s.R += l.Color.R
		s.G += l.Color.G
		s.B += l.Color.B
		s.Opacity += l.Color.A
	}
	n := float64(len(layers))
	s.X /= n
	s.Y /= n
	s.Blur /= n
	s.Spread /= n
	s.R /= n
	s.G /= n
	s.B /= n
	s.Opacity /= n
	return s
}

// Hex returns the mean shadow color as "#rrggbb".
func (s Summary) Hex() string {
	return hexColor(s.Color())
}

// Color returns the mean shadow color including opacity.
func (s Summary) Color() gg.RGBA {
	return gg.RGBA{R: s.R, G: s.G, B: s.B, A: s.Opacity}
}

// Emitter receives every recomputed Summary. Emission is one-way and
// fire-and-forget: implementations must not block the caller.
type Emitter interface {
	Emit(s Summary)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(Summary)

// Emit calls f(s).
func (f EmitterFunc) Emit(s Summary) { f(s) }

// discardEmitter drops every summary.
type discardEmitter struct{}

func (discardEmitter) Emit(Summary) {}
