package gradientbuilder

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const defaultHueSpread = 30

// Band selects one of the fixed saturation or lightness ranges the
// synthetic generator samples from.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandHigh:
		return "high"
	default:
		return "medium"
	}
}

// saturation is the band's saturation range in percent.
func (b Band) saturation() (lo, hi float64) {
	switch b {
	case BandLow:
		return 10, 35
	case BandHigh:
		return 70, 100
	default:
		return 35, 70
	}
}

// lightness is the band's lightness range in percent.
func (b Band) lightness() (lo, hi float64) {
	switch b {
	case BandLow:
		return 15, 40
	case BandHigh:
		return 65, 90
	default:
		return 40, 65
	}
}

// Encoding selects the string form Generate emits.
type Encoding int

const (
	// EncodingHex renders #rrggbb. Alpha is not representable and ignored.
	EncodingHex Encoding = iota
	// EncodingRGB renders rgba(r, g, b, a).
	EncodingRGB
	// EncodingHSL renders hsla(h, s%, l%, a).
	EncodingHSL
)

// GenerateOptions configures the synthetic palette generator.
type GenerateOptions struct {
	// Base hue in degrees; generated hues spread around it, wrapping at 360.
	Hue float64
	// Greatest hue distance from Hue. Zero selects the default (30).
	HueSpread float64
	// Saturation band to sample from.
	Saturation Band
	// Lightness band to sample from.
	Lightness Band
	// String form for Generate output.
	Encoding Encoding
	// Alpha emitted by EncodingRGB and EncodingHSL, in (0,1].
	// Zero selects opaque.
	Alpha float64
	// Rand is the random source; nil uses the package-level source.
	// Inject a seeded source for reproducible palettes.
	Rand *rand.Rand
}

// GenerateHSL returns count random colors in HSL space around opt.Hue,
// components sampled uniformly from the selected bands and rounded to
// whole numbers. count <= 0 returns nil.
func GenerateHSL(count int, opt GenerateOptions) []HSL {
	if count <= 0 {
		return nil
	}
	random := rand.Float64
	if opt.Rand != nil {
		random = opt.Rand.Float64
	}
	spread := opt.HueSpread
	if spread == 0 {
		spread = defaultHueSpread
	}
	sLo, sHi := opt.Saturation.saturation()
	lLo, lHi := opt.Lightness.lightness()

	out := make([]HSL, count)
	for i := range out {
		out[i] = HSL{
			H: wrapHue(math.Round(opt.Hue + (random()*2-1)*spread)),
			S: math.Round(sLo + random()*(sHi-sLo)),
			L: math.Round(lLo + random()*(lHi-lLo)),
		}
	}
	return out
}

// Generate returns count random colors encoded per opt.Encoding.
func Generate(count int, opt GenerateOptions) []string {
	hsl := GenerateHSL(count, opt)
	if hsl == nil {
		return nil
	}
	alpha := opt.Alpha
	if alpha == 0 {
		alpha = 1
	}
	out := make([]string, len(hsl))
	for i, h := range hsl {
		out[i] = encodeColor(h, opt.Encoding, alpha)
	}
	return out
}

func encodeColor(h HSL, enc Encoding, alpha float64) string {
	switch enc {
	case EncodingRGB:
		c := h.RGB()
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(alpha))
	case EncodingHSL:
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
			formatNumber(h.H), formatNumber(h.S), formatNumber(h.L), formatNumber(alpha))
	default:
		return h.RGB().Hex()
	}
}

// wrapHue folds a hue in degrees into [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
