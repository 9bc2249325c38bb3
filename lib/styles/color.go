package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color such as "#0d6efd" or "#fff".
type Color string

func (c Color) String() string { return string(c) }

// RGB decodes the color into its red, green and blue components.
// Three digit shorthand ("#abc") is expanded.
func (c Color) RGB() (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, string(c))
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Darken returns a darker variant. Each shift step lowers the luminance
// by 5%; twenty steps reach black.
func (c Color) Darken(shift int) Color {
	return c.scale(clampFloat(1-float64(shift)/20, 0, 1))
}

// Lighten returns a lighter variant. Each shift step moves the luminance
// 5% closer to white.
func (c Color) Lighten(shift int) Color {
	return c.scale(clampFloat(1+float64(shift)/20, 1, 2))
}

// Readable picks black or white text for use on top of this color.
func (c Color) Readable() Color {
	r, g, b, err := c.RGB()
	if err != nil {
		return "#000"
	}
	if int(r)+int(g)+int(b) > 400 {
		return "#000"
	}
	return "#fff"
}

func (c Color) scale(factor float64) Color {
	r, g, b, err := c.RGB()
	if err != nil {
		return c
	}
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := col.Hsl()

	if factor < 1 {
		l *= factor
	} else {
		l += (1 - l) * (factor - 1)
	}
	l = clampFloat(l, 1.0/255, 1)

	return Color(colorful.Hsl(h, s, l).Clamped().Hex())
}

// ColorRange is a palette of precomputed tints ordered from darkest to
// lightest. Darken and Lighten move through the variants instead of
// recomputing the color.
type ColorRange struct {
	Variants []Color
	Position int
}

// Range builds a ColorRange positioned at its middle variant.
func Range(variants ...Color) ColorRange {
	return ColorRange{Variants: variants, Position: len(variants) / 2}
}

// Color returns the variant at the current position.
func (r ColorRange) Color() Color {
	if len(r.Variants) == 0 {
		return ""
	}
	return r.Variants[clampInt(r.Position, 0, len(r.Variants)-1)]
}

func (r ColorRange) String() string { return string(r.Color()) }

// Darken steps shift variants towards the start of the range, stopping at
// the first variant. A single-color range is darkened with HSL math.
func (r ColorRange) Darken(shift int) ColorRange {
	if len(r.Variants) == 1 {
		return ColorRange{Variants: []Color{r.Variants[0].Darken(shift)}}
	}
	return r.at(r.Position - shift)
}

// Lighten steps shift variants towards the end of the range, stopping at
// the last variant. A single-color range is lightened with HSL math.
func (r ColorRange) Lighten(shift int) ColorRange {
	if len(r.Variants) == 1 {
		return ColorRange{Variants: []Color{r.Variants[0].Lighten(shift)}}
	}
	return r.at(r.Position + shift)
}

// Readable picks black or white text for the current variant.
func (r ColorRange) Readable() Color { return r.Color().Readable() }

func (r ColorRange) at(pos int) ColorRange {
	if len(r.Variants) == 0 {
		return r
	}
	return ColorRange{Variants: r.Variants, Position: clampInt(pos, 0, len(r.Variants)-1)}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
