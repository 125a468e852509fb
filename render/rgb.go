package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color as stored in surface cells
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ParseHex parses "#rrggbb" or "#rgb" notation
func ParseHex(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Luma returns the brightest channel, used to decide when a faded glyph is gone
func (c RGB) Luma() uint8 {
	return max(c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Blend composites src over c with the given alpha (source-over)
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	// Truncate like an 8-bit canvas so repeated fades always make progress
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Mix interpolates in linear RGB space, used for glow tints that should not muddy toward gray
func Mix(c, src RGB, t float64) RGB {
	r, g, b := c.colorful().BlendLinearRgb(src.colorful(), t).Clamped().RGB255()
	return RGB{r, g, b}
}
