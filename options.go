package sunshade

// Shadow defaults.
const (
	// DefaultLayers is the number of shadow passes per target.
	DefaultLayers = 8

	// DefaultElevation scales how far shadows travel from the target.
	DefaultElevation = 0.5

	// DefaultTintLightness is the HSL lightness of backdrop-tinted shadows.
	DefaultTintLightness = 0.2
)

// Option configures shadow computation.
//
// Example:
//
//	layers := sunshade.ComputeShadows(light, target, nil, sunshade.WithLayers(12))
type Option func(*shadowOptions)

// shadowOptions holds the tunables of ComputeShadows.
type shadowOptions struct {
	layers        int
	elevation     float64
	tintLightness float64
}

// defaultShadowOptions returns the default shadow options.
func defaultShadowOptions() shadowOptions {
	return shadowOptions{
		layers:        DefaultLayers,
		elevation:     DefaultElevation,
		tintLightness: DefaultTintLightness,
	}
}

func applyOptions(opts []Option) shadowOptions {
	o := defaultShadowOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLayers sets the number of shadow layers. Values below 1 become 1.
func WithLayers(n int) Option {
	return func(o *shadowOptions) {
		if n < 1 {
			n = 1
		}
		o.layers = n
	}
}

// WithElevation sets the target elevation factor applied to layer offsets.
func WithElevation(e float64) Option {
	return func(o *shadowOptions) {
		o.elevation = e
	}
}

// WithTintLightness sets the lightness used when a backdrop tints the shadow.
func WithTintLightness(l float64) Option {
	return func(o *shadowOptions) {
		o.tintLightness = l
	}
}
