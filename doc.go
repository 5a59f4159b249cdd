// Package sunshade simulates a directional light source on a 2D design
// canvas and keeps a soft, multi-layer drop shadow on the selected shape.
//
// # Overview
//
// A session creates a synthetic light shape (the "sun"), then listens to
// the host's selection notifications. Every notification recomputes the
// shadow of the last selected shape from the relative position and size of
// the light and the target, optionally tinted by the shape painted behind
// the target.
//
// # Quick Start
//
//	doc := canvas.New()
//	p, err := sunshade.Start(doc, sunshade.EmitterFunc(func(s sunshade.Summary) {
//	    fmt.Println(s.Hex(), s.Blur)
//	}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	card := doc.AddRectangle(doc.Page(), "card", 200, 25, 50, 50)
//	doc.Select(card) // card now carries eight drop-shadow layers
//
// # Shadow model
//
// With d the distance between the light and target centers:
//
//	blur   = clamp(d/100, 0.8, 5)
//	scale  = clamp(lightArea/targetArea, 0.8, 100)
//	t_i    = easeOutQuad(i/N)
//	alpha  = 0.5 - 0.5*t_i
//	offset = direction * d * t_i * elevation
//	radius = 100 * scale * blur * t_i
//
// # Host integration
//
// The host canvas is reached only through the capability interfaces in
// this package (Shape, Tagger, ShapeFactory, SelectionSource, CloseSource).
// Package canvas provides an in-memory implementation.
//
// # Architecture
//
//   - Root: Light, FindBackdrop, ComputeShadows, Tracker, Summarize, Plugin
//   - canvas: in-memory host document and YAML scene fixtures
//   - preview: renders a document with its shadows through gg
//   - panel: the summary panel messages and rendering
//   - manifest: plugin registration metadata
package sunshade
