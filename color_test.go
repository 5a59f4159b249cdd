package sunshade

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestHSLOf(t *testing.T) {
	tests := []struct {
		name    string
		c       gg.RGBA
		h, s, l float64
	}{
		{"red", gg.Red, 0, 1, 0.5},
		{"green", gg.Green, 120, 1, 0.5},
		{"blue", gg.Blue, 240, 1, 0.5},
		{"yellow", gg.Yellow, 60, 1, 0.5},
		{"magenta", gg.Magenta, 300, 1, 0.5},
		{"dark teal", gg.RGB(0, 0.4, 0.4), 180, 1, 0.2},
		{"pastel", gg.RGB(1, 0.8, 0.8), 0, 1, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := HSLOf(tt.c)
			if absDiff(h, tt.h) > 1e-9 || absDiff(s, tt.s) > 1e-9 || absDiff(l, tt.l) > 1e-9 {
				t.Errorf("HSLOf(%v) = (%v, %v, %v), want (%v, %v, %v)", tt.c, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestHSLOf_Achromatic(t *testing.T) {
	for _, c := range []gg.RGBA{gg.White, gg.Black, gg.RGB(0.5, 0.5, 0.5), gg.RGBA2(0.3, 0.3, 0.3, 0)} {
		h, s, _ := HSLOf(c)
		if !math.IsNaN(h) {
			t.Errorf("HSLOf(%v) hue = %v, want NaN", c, h)
		}
		if s != 0 {
			t.Errorf("HSLOf(%v) saturation = %v, want 0", c, s)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// gg.HSL is the inverse used by Tint.
	for _, c := range []gg.RGBA{gg.RGB(0.2, 0.6, 0.9), gg.RGB(0.9, 0.1, 0.3), gg.RGB(0.05, 0.5, 0.1)} {
		h, s, l := HSLOf(c)
		got := gg.HSL(h, s, l)
		if absDiff(got.R, c.R) > 1e-9 || absDiff(got.G, c.G) > 1e-9 || absDiff(got.B, c.B) > 1e-9 {
			t.Errorf("gg.HSL(HSLOf(%v)) = %v", c, got)
		}
	}
}

func TestTint(t *testing.T) {
	got, ok := Tint(gg.RGB(0.2, 0.6, 0.9), 0.2)
	if !ok {
		t.Fatal("Tint() reported no hue for a chromatic color")
	}
	wantH, wantS, _ := HSLOf(gg.RGB(0.2, 0.6, 0.9))
	h, s, l := HSLOf(got)
	if absDiff(h, wantH) > 1e-6 || absDiff(s, wantS) > 1e-6 || absDiff(l, 0.2) > 1e-9 {
		t.Errorf("Tint() HSL = (%v, %v, %v), want (%v, %v, 0.2)", h, s, l, wantH, wantS)
	}
	if got.A != 1 {
		t.Errorf("Tint() alpha = %v, want 1", got.A)
	}

	if _, ok := Tint(gg.White, 0.2); ok {
		t.Error("Tint(white) should report no hue")
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{gg.Black, "#000000"},
		{gg.White, "#ffffff"},
		{gg.RGB(0.4, 0, 0), "#660000"},
		{gg.RGB(2, -1, 0.5), "#ff0080"},
	}
	for _, tt := range tests {
		if got := hexColor(tt.c); got != tt.want {
			t.Errorf("hexColor(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}
