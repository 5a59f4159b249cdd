package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gg"
	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
	"github.com/gogpu/sunshade/panel"
	"github.com/gogpu/sunshade/preview"
)

// game adapts a canvas document and its panel channel to ebiten.
type game struct {
	doc *canvas.Document
	ch  *panel.Channel
	log *slog.Logger

	dragging     *canvas.Node
	lastX, lastY int

	summary    sunshade.Summary
	canvasImg  *ebiten.Image
	panelImg   *ebiten.Image
	dirty      bool
	panelDirty bool
}

func newGame(doc *canvas.Document, ch *panel.Channel, log *slog.Logger) *game {
	return &game{doc: doc, ch: ch, log: log, dirty: true, panelDirty: true}
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ch.RequestClose()
	}
	select {
	case <-g.ch.Closes():
		g.doc.Close()
		return ebiten.Termination
	default:
	}

	g.handleMouse()

	if msg, ok := g.ch.Latest(); ok {
		g.summary = msg.Summary
		g.panelDirty = true
		g.dirty = true
	}
	return nil
}

func (g *game) handleMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if x >= canvasWidth {
			return
		}
		hit := g.doc.HitTest(float64(x), float64(y))
		if hit == nil || hit == g.doc.Page() {
			g.doc.Select()
			return
		}
		g.dragging, g.lastX, g.lastY = hit, x, y
		if !sunshade.IsLight(g.doc, hit) {
			g.doc.Select(hit)
		}
	case g.dragging != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if x != g.lastX || y != g.lastY {
			g.dragging.MoveBy(float64(x-g.lastX), float64(y-g.lastY))
			g.lastX, g.lastY = x, y
			g.dirty = true
		}
	case g.dragging != nil && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = nil
		g.reselect()
	}
}

// reselect fires a selection change with the current selection so the
// plugin recomputes after a move.
func (g *game) reselect() {
	var nodes []*canvas.Node
	for _, s := range g.doc.Selection() {
		if n := g.doc.Node(s.ID()); n != nil {
			nodes = append(nodes, n)
		}
	}
	g.doc.Select(nodes...)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.canvasImg = replace(g.canvasImg, g.renderCanvas())
		g.dirty = false
	}
	if g.panelDirty {
		g.panelImg = replace(g.panelImg, g.renderPanel())
		g.panelDirty = false
	}
	if g.canvasImg != nil {
		screen.DrawImage(g.canvasImg, nil)
	}
	if g.panelImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(canvasWidth, 0)
		screen.DrawImage(g.panelImg, op)
	}
}

func (g *game) renderCanvas() *ebiten.Image {
	dc, err := preview.Render(g.doc,
		preview.WithViewport(sunshade.Rect{MaxX: canvasWidth, MaxY: canvasHeight}),
		preview.WithBackground(gg.White),
	)
	if err != nil {
		g.log.Warn("render canvas", "err", err)
		return nil
	}
	defer dc.Close()
	return ebiten.NewImageFromImage(dc.Image())
}

func (g *game) renderPanel() *ebiten.Image {
	dc, err := panel.Render(g.summary)
	if err != nil {
		g.log.Warn("render panel", "err", err)
		return nil
	}
	defer dc.Close()
	return ebiten.NewImageFromImage(dc.Image())
}

// replace frees old when next is a new image. A nil next keeps old.
func replace(old, next *ebiten.Image) *ebiten.Image {
	if next == nil {
		return old
	}
	if old != nil {
		old.Deallocate()
	}
	return next
}

func (g *game) Layout(int, int) (int, int) {
	return canvasWidth + sunshade.WindowWidth, canvasHeight
}
