package export

import (
	"math/rand"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Color{1, 0, 0}, false},
		{"00ff00", Color{0, 1, 0}, false},
		{"#000000", Color{0, 0, 0}, false},
		{"#FFF", Color{}, true},
		{"#GG0000", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	for _, hex := range DefaultPalette {
		c, err := ParseHexColor(hex)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("Hex() = %q, want %q", got, hex)
		}
	}
	if got := (Color{-1, 2, 0.5}).Hex(); got != "#00FF80" {
		t.Errorf("clamped Hex() = %q, want #00FF80", got)
	}
}

func TestPaletteColorWraps(t *testing.T) {
	first := PaletteColor(DefaultPalette, 0)
	wrapped := PaletteColor(DefaultPalette, len(DefaultPalette))
	if first != wrapped {
		t.Errorf("palette did not wrap: %v vs %v", first, wrapped)
	}
	if got := PaletteColor(nil, 3); got != White {
		t.Errorf("empty palette = %v, want White", got)
	}
	if got := PaletteColor([]string{"nope"}, 0); got != White {
		t.Errorf("bad entry = %v, want White", got)
	}
}

func TestNextColor(t *testing.T) {
	if got := next(nil, Color{0.1, 0.2, 0.3}); got != (Color{0.1, 0.2, 0.3}) {
		t.Errorf("next(nil) = %v, want fallback", got)
	}

	a := next(rand.New(rand.NewSource(7)), White)
	b := next(rand.New(rand.NewSource(7)), White)
	if a != b {
		t.Errorf("equal seeds gave %v and %v", a, b)
	}
	for _, ch := range a {
		if ch < 0 || ch >= 1 {
			t.Errorf("channel %f outside [0,1)", ch)
		}
	}
}
