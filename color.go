package symbler

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrBadColor is returned by ParseColor for unrecognized color strings.
var ErrBadColor = errors.New("symbler: unrecognized color")

// Color is an opaque RGB stroke color.
type Color struct {
	R, G, B uint8
}

// Black is the stroke color of a fresh interpreter.
var Black = Color{}

// ColorFromNibbles builds a color by doubling each channel nibble into a
// byte, so 0xa becomes 0xaa.
func ColorFromNibbles(r, g, b int) Color {
	return Color{R: double(r), G: double(g), B: double(b)}
}

func double(n int) uint8 {
	n &= 0xf
	return uint8(n<<4 | n)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rgb", "#rrggbb" (the leading '#' is optional) or an
// SVG 1.1 color name such as "beige".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	hex := strings.TrimPrefix(name, "#")

	var v [6]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			n, ok := hexValue(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
			v[2*i], v[2*i+1] = n, n
		}
	case 6:
		for i := 0; i < 6; i++ {
			n, ok := hexValue(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
			v[i] = n
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, nil
}

// hexValue decodes a single lowercase hex digit.
func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
