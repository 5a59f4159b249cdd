package panel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sunshade"
)

// Field is one labelled value shown by the panel.
type Field struct {
	Label string
	Value string
}

// Format returns the panel fields for s in display order:
// X, Blur, Y, Spread, Color, Opacity.
func Format(s sunshade.Summary) []Field {
	return FormatLocale(s, language.English)
}

// FormatLocale is Format with locale-specific number formatting.
func FormatLocale(s sunshade.Summary, tag language.Tag) []Field {
	p := message.NewPrinter(tag)
	num := func(v float64) string { return p.Sprintf("%.2f", v) }
	return []Field{
		{Label: "X", Value: num(s.X)},
		{Label: "Blur", Value: num(s.Blur)},
		{Label: "Y", Value: num(s.Y)},
		{Label: "Spread", Value: num(s.Spread)},
		{Label: "Color", Value: s.Hex()},
		{Label: "Opacity", Value: p.Sprintf("%.0f%%", s.Opacity*100)},
	}
}
