package gradientbuilder

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple, the pixel and palette currency of the
// package. Alpha is consumed during sampling and never retained.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Hex encodes the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes #rrggbb (or #rgb shorthand) back into an RGB triple.
// Round-trips Hex exactly for every triple.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color: %w", err)
	}
	return fromColorful(col), nil
}

// HSL converts to HSL space.
func (c RGB) HSL() HSL {
	h, s, l := toColorful(c).Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// RGB converts back to 8-bit sRGB, rounding each channel to the nearest
// integer. The conversion is exact on the primary corners: (0,100,50)
// gives pure red, hue 120 pure green, hue 240 pure blue.
func (h HSL) RGB() RGB {
	return fromColorful(colorful.Hsl(h.H, h.S/100, h.L/100).Clamped())
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(col colorful.Color) RGB {
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}
}

// luminance is the linear-RGB luma used for brightness ordering.
func luminance(c RGB) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
