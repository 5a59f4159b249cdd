package canvas_test

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
)

type summaries []sunshade.Summary

func (s *summaries) Emit(v sunshade.Summary) { *s = append(*s, v) }

func TestSessionRedBackdrop(t *testing.T) {
	doc := canvas.New()
	var got summaries
	p, err := sunshade.Start(doc, &got)
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	defer func() { _ = p.Close() }()

	doc.AddRectangle(nil, "red", 150, -100, 400, 400, sunshade.Solid(gg.Red))
	card := doc.AddRectangle(nil, "card", 200, 25, 50, 50, sunshade.Solid(gg.White))
	doc.Select(card)

	effects := card.Effects()
	if len(effects) != sunshade.DefaultLayers {
		t.Fatalf("effects = %d, want %d", len(effects), sunshade.DefaultLayers)
	}
	h, _, l := sunshade.HSLOf(effects[0].Color)
	if math.Abs(h) > 1e-6 || math.Abs(l-0.2) > 1e-9 {
		t.Errorf("shadow HSL hue=%v lightness=%v, want 0 and 0.2", h, l)
	}
	if len(got) != 1 {
		t.Errorf("summaries = %d, want 1", len(got))
	}
}

func TestSessionNoSelection(t *testing.T) {
	doc := canvas.New()
	var got summaries
	p, err := sunshade.Start(doc, &got)
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	card := doc.AddRectangle(nil, "card", 200, 25, 50, 50)
	doc.Select()
	doc.Select(doc.Node(p.Light().Shape().ID()))

	if len(card.Effects()) != 0 || len(got) != 0 {
		t.Errorf("untracked session mutated effects (%d) or emitted (%d)", len(card.Effects()), len(got))
	}

	doc.Close()
	if !p.Closed() || !p.Light().Shape().Removed() {
		t.Error("closing the document did not remove the light")
	}
}

func TestSessionLightRemovedExternally(t *testing.T) {
	doc := canvas.New()
	p, err := sunshade.Start(doc, nil)
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	card := doc.AddRectangle(nil, "card", 200, 25, 50, 50)
	doc.Select(card)

	if err := doc.Remove(p.Light().Shape()); err != nil {
		t.Fatalf("Remove(light) = %v", err)
	}
	doc.Select(card)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
