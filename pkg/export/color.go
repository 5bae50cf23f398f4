package export

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSource yields color channels in [0, 1). *math/rand.Rand satisfies
// it, so callers seed their own source instead of sharing global state.
type ColorSource interface {
	Float32() float32
}

// Color is a linear RGB triple in [0, 1].
type Color [3]float32

// White is used when no color is supplied.
var White = Color{1, 1, 1}

// DefaultPalette assigns distinct colors to parts in order.
var DefaultPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("export: color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("export: color %q: %w", s, err)
	}
	return Color{
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// PaletteColor returns palette entry i, wrapping around. Unparseable entries
// fall back to White.
func PaletteColor(palette []string, i int) Color {
	if len(palette) == 0 {
		return White
	}
	c, err := ParseHexColor(palette[i%len(palette)])
	if err != nil {
		return White
	}
	return c
}

// Hex formats c as "#RRGGBB".
func (c Color) Hex() string {
	var b [3]uint8
	for i, ch := range c {
		switch {
		case ch <= 0:
			b[i] = 0
		case ch >= 1:
			b[i] = 255
		default:
			b[i] = uint8(ch*255 + 0.5)
		}
	}
	return fmt.Sprintf("#%02X%02X%02X", b[0], b[1], b[2])
}

// next draws a color from src, or returns fallback when src is nil.
func next(src ColorSource, fallback Color) Color {
	if src == nil {
		return fallback
	}
	return Color{src.Float32(), src.Float32(), src.Float32()}
}
