// Command sunshade-live hosts the shadow plugin in a window.
//
// Click a shape to select it, drag to move it. Dragging the light or the
// selected shape recomputes the shadows on release. Escape closes the
// panel, which closes the plugin.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
	"github.com/gogpu/sunshade/panel"
)

//go:embed scene.yaml
var defaultScene []byte

const (
	canvasWidth  = 480
	canvasHeight = 320
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (default: built-in)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sunshade.SetLogger(log)

	data := defaultScene
	if *scenePath != "" {
		var err error
		if data, err = os.ReadFile(*scenePath); err != nil {
			log.Error("read scene", "err", err)
			os.Exit(1)
		}
	}
	doc, sc, err := canvas.Load(bytes.NewReader(data))
	if err != nil {
		log.Error("load scene", "err", err)
		os.Exit(1)
	}

	ch := panel.NewChannel()
	p, err := sunshade.Start(doc, ch)
	if err != nil {
		log.Error("start plugin", "err", err)
		os.Exit(1)
	}
	sc.Place(doc, p.Light().Shape())

	g := newGame(doc, ch, log)
	ebiten.SetWindowSize(canvasWidth+sunshade.WindowWidth, canvasHeight)
	ebiten.SetWindowTitle("Sunshade")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
	if !p.Closed() {
		if err := p.Close(); err != nil {
			log.Warn("close plugin", "err", err)
		}
	}
}
