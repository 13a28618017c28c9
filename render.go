package gradientbuilder

import (
	"image"
	"image/color"
	"math"
)

// Render rasterizes the gradient onto a w×h image with CSS semantics:
// 0deg points up, 90deg right; the gradient line is centered and spans
// |w·sinθ| + |h·cosθ|, so the 0% and 100% stops land exactly on the
// corner projections. Colors pad beyond the outermost stops. An empty
// stop list renders fully transparent.
func (g Gradient) Render(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || len(g.Stops) == 0 {
		return img
	}
	rad := g.Angle * math.Pi / 180
	dx := math.Sin(rad)
	dy := -math.Cos(rad) // y grows downward in image space
	length := math.Abs(float64(w)*dx) + math.Abs(float64(h)*dy)
	if length == 0 {
		length = 1
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	for y := range h {
		for x := range w {
			t := ((float64(x)+0.5-cx)*dx + (float64(y)+0.5-cy)*dy) / length
			img.SetNRGBA(x, y, colorAt(g.Stops, t+0.5))
		}
	}
	return img
}

// colorAt resolves the stop list at t in [0,1] along the gradient line.
// Stop positions clamp to [0,100] and never move before a predecessor
// (the CSS running-max rule); interpolation is a plain sRGB lerp, which
// is what the legacy linear-gradient syntax paints.
func colorAt(stops []Stop, t float64) color.NRGBA {
	pos := clampFloat(t, 0, 1) * 100
	prevColor := stops[0].Color
	prevPos := clampFloat(stops[0].Position, 0, 100)
	if pos <= prevPos {
		return nrgba(prevColor)
	}
	for _, s := range stops[1:] {
		sp := max(clampFloat(s.Position, 0, 100), prevPos)
		if pos <= sp {
			// sp >= pos > prevPos, so the divisor is positive.
			return lerp(prevColor, s.Color, (pos-prevPos)/(sp-prevPos))
		}
		prevColor, prevPos = s.Color, sp
	}
	return nrgba(prevColor)
}

func nrgba(c RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// lerp blends a toward b by f in [0,1], rounding each channel.
func lerp(a, b RGB, f float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, f),
		G: lerpChannel(a.G, b.G, f),
		B: lerpChannel(a.B, b.B, f),
		A: 255,
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
