package panel

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sunshade"
)

// Panel layout.
const (
	labelSize = 10
	valueSize = 13
	margin    = 12
	rowHeight = 38
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// font returns the shared Go Regular font source.
func font() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Render draws the panel for s at the plugin window size.
// The caller owns the returned context.
func Render(s sunshade.Summary) (*gg.Context, error) {
	src, err := font()
	if err != nil {
		return nil, fmt.Errorf("panel: load font: %w", err)
	}
	labelFace := src.Face(labelSize)
	valueFace := src.Face(valueSize)

	dc := gg.NewContext(sunshade.WindowWidth, sunshade.WindowHeight)
	dc.ClearWithColor(gg.White)

	fields := Format(s)
	colW := float64(sunshade.WindowWidth-2*margin) / 2

	// Numeric fields in a two-column grid.
	for i, f := range fields[:4] {
		x := margin + float64(i%2)*colW
		y := margin + float64(i/2)*rowHeight
		dc.SetRGB(0.55, 0.55, 0.55)
		dc.SetFont(labelFace)
		dc.DrawString(f.Label, x, y+labelSize)
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.SetFont(valueFace)
		dc.DrawString(f.Value, x, y+labelSize+valueSize+4)
	}

	// Swatch, hex and opacity on the last row.
	y := float64(margin + 2*rowHeight)
	c := s.Color()
	dc.SetRGB(c.R, c.G, c.B)
	dc.DrawRoundedRectangle(margin, y, 14, 14, 3)
	if err := dc.Fill(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("panel: %w", err)
	}
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetFont(valueFace)
	dc.DrawString(fields[4].Value, margin+22, y+12)
	dc.DrawString(fields[5].Value, margin+colW, y+12)

	return dc, nil
}
