package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette maps a cell intensity to a display color.
type Palette func(v uint8) color.RGBA

// Grayscale renders intensity v as an opaque gray of the same level.
func Grayscale(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// ParseTint returns Grayscale for "" or "gray", otherwise a Tinted palette
// for a hex color such as "ffb040".
func ParseTint(s string) (Palette, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
	if s == "" || s == "gray" {
		return Grayscale, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return nil, fmt.Errorf("render: invalid tint %q", s)
	}
	return Tinted(color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}), nil
}

// Tinted scales a base color by the cell intensity, keeping empty cells
// black.
func Tinted(base color.RGBA) Palette {
	return func(v uint8) color.RGBA {
		return color.RGBA{
			R: uint8(uint16(base.R) * uint16(v) / 255),
			G: uint8(uint16(base.G) * uint16(v) / 255),
			B: uint8(uint16(base.B) * uint16(v) / 255),
			A: 255,
		}
	}
}
