// Command sunshade replays a scene against the shadow plugin and writes
// preview and panel images.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
	"github.com/gogpu/sunshade/manifest"
	"github.com/gogpu/sunshade/panel"
	"github.com/gogpu/sunshade/preview"
)

//go:embed demo.yaml
var demoScene []byte

func main() {
	var (
		scenePath    = flag.String("scene", "", "scene file (default: built-in demo)")
		previewPath  = flag.String("preview", "preview.png", "preview output file, empty to skip")
		panelPath    = flag.String("panel", "panel.png", "panel output file, empty to skip")
		manifestPath = flag.String("manifest", manifest.FileName, "plugin manifest")
		layers       = flag.Int("layers", sunshade.DefaultLayers, "shadow layers per target")
		elevation    = flag.Float64("elevation", sunshade.DefaultElevation, "shadow elevation")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sunshade.SetLogger(log)

	cfg := config{
		scene:     *scenePath,
		preview:   *previewPath,
		panel:     *panelPath,
		manifest:  *manifestPath,
		layers:    *layers,
		elevation: *elevation,
	}
	if err := run(log, cfg); err != nil {
		log.Error("sunshade failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	scene, preview, panel, manifest string
	layers                          int
	elevation                       float64
}

func run(log *slog.Logger, cfg config) error {
	m, err := manifest.LoadFile(cfg.manifest)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	log.Info("manifest", "name", m.Name, "id", m.ID, "api", m.API)

	src, err := openScene(cfg.scene)
	if err != nil {
		return err
	}
	doc, sc, err := canvas.Load(src)
	if err != nil {
		return err
	}

	ch := panel.NewChannel()
	emit := sunshade.EmitterFunc(func(s sunshade.Summary) {
		log.Info("summary",
			"x", s.X, "y", s.Y, "blur", s.Blur, "spread", s.Spread,
			"color", s.Hex(), "opacity", s.Opacity)
		ch.Emit(s)
	})

	p, err := sunshade.Start(doc, emit, sunshade.WithShadowOptions(
		sunshade.WithLayers(cfg.layers),
		sunshade.WithElevation(cfg.elevation),
	))
	if err != nil {
		return err
	}
	sc.Place(doc, p.Light().Shape())

	var last sunshade.Summary
	for i, step := range sc.Steps {
		if err := doc.Apply(step, p.Light().Shape()); err != nil {
			log.Warn("step skipped", "step", i, "err", err)
			continue
		}
		if msg, ok := ch.Latest(); ok {
			last = msg.Summary
		}
	}

	if cfg.preview != "" {
		if err := writePreview(doc, cfg.preview); err != nil {
			return err
		}
		log.Info("preview saved", "file", cfg.preview)
	}
	if cfg.panel != "" {
		if err := writePanel(last, cfg.panel); err != nil {
			return err
		}
		log.Info("panel saved", "file", cfg.panel)
	}

	if err := closeSession(doc, p); err != nil {
		return err
	}
	log.Info("light removed", "id", p.Light().Shape().ID())
	return nil
}

// closeSession closes the document, which closes the plugin through its
// close handler, and reports a light that is still on the canvas.
func closeSession(doc interface{ Close() }, p *sunshade.Plugin) error {
	doc.Close()
	if err := p.Close(); err != nil {
		return err
	}
	if light := p.Light().Shape(); !light.Removed() {
		return fmt.Errorf("light %s still on canvas after close", light.ID())
	}
	return nil
}

func openScene(path string) (io.Reader, error) {
	if path == "" {
		return bytes.NewReader(demoScene), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return bytes.NewReader(data), nil
}

func writePreview(doc *canvas.Document, path string) error {
	dc, err := preview.Render(doc)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}

func writePanel(s sunshade.Summary, path string) error {
	dc, err := panel.Render(s)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save panel: %w", err)
	}
	return nil
}
