package gradientbuilder

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateHSLSeededIsReproducible(t *testing.T) {
	t.Parallel()
	opt := GenerateOptions{Hue: 210, Saturation: BandHigh, Lightness: BandMedium}
	opt.Rand = rand.New(rand.NewPCG(5, 5))
	a := GenerateHSL(6, opt)
	opt.Rand = rand.New(rand.NewPCG(5, 5))
	b := GenerateHSL(6, opt)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different palettes (-a +b):\n%s", diff)
	}
}

func TestGenerateHSLBands(t *testing.T) {
	t.Parallel()
	opt := GenerateOptions{
		Hue:        210,
		Saturation: BandLow,
		Lightness:  BandHigh,
		Rand:       rand.New(rand.NewPCG(11, 11)),
	}
	for _, c := range GenerateHSL(200, opt) {
		if c.H < 180 || c.H > 240 {
			t.Fatalf("hue %v outside 210±30", c.H)
		}
		if c.S < 10 || c.S > 35 {
			t.Fatalf("saturation %v outside low band", c.S)
		}
		if c.L < 65 || c.L > 90 {
			t.Fatalf("lightness %v outside high band", c.L)
		}
		if c.H != float64(int(c.H)) || c.S != float64(int(c.S)) || c.L != float64(int(c.L)) {
			t.Fatalf("components not whole numbers: %+v", c)
		}
	}
}

func TestGenerateHSLHueWraps(t *testing.T) {
	t.Parallel()
	opt := GenerateOptions{Hue: 350, Rand: rand.New(rand.NewPCG(7, 7))}
	sawWrapped := false
	for _, c := range GenerateHSL(300, opt) {
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %v outside [0,360)", c.H)
		}
		if c.H > 20 && c.H < 320 {
			t.Fatalf("hue %v too far from 350 for the default spread", c.H)
		}
		if c.H <= 20 {
			sawWrapped = true
		}
	}
	if !sawWrapped {
		t.Error("no hue wrapped past 360 in 300 samples")
	}
}

func TestGenerateHSLCustomSpread(t *testing.T) {
	t.Parallel()
	opt := GenerateOptions{Hue: 100, HueSpread: 5, Rand: rand.New(rand.NewPCG(3, 3))}
	for _, c := range GenerateHSL(200, opt) {
		if c.H < 95 || c.H > 105 {
			t.Fatalf("hue %v outside 100±5", c.H)
		}
	}
}

func TestGenerateHSLCount(t *testing.T) {
	t.Parallel()
	if got := GenerateHSL(0, GenerateOptions{}); got != nil {
		t.Errorf("count 0 = %v, want nil", got)
	}
	if got := GenerateHSL(-3, GenerateOptions{}); got != nil {
		t.Errorf("count -3 = %v, want nil", got)
	}
	if got := GenerateHSL(5, GenerateOptions{}); len(got) != 5 {
		t.Errorf("count 5 returned %d colors", len(got))
	}
}

func TestGenerateEncodings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opt  GenerateOptions
		re   *regexp.Regexp
	}{
		{
			name: "hex",
			opt:  GenerateOptions{Encoding: EncodingHex},
			re:   regexp.MustCompile(`^#[0-9a-f]{6}$`),
		},
		{
			name: "rgba opaque",
			opt:  GenerateOptions{Encoding: EncodingRGB},
			re:   regexp.MustCompile(`^rgba\(\d+, \d+, \d+, 1\)$`),
		},
		{
			name: "rgba translucent",
			opt:  GenerateOptions{Encoding: EncodingRGB, Alpha: 0.5},
			re:   regexp.MustCompile(`^rgba\(\d+, \d+, \d+, 0\.5\)$`),
		},
		{
			name: "hsla",
			opt:  GenerateOptions{Encoding: EncodingHSL},
			re:   regexp.MustCompile(`^hsla\(\d+, \d+%, \d+%, 1\)$`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opt := tt.opt
			opt.Rand = rand.New(rand.NewPCG(42, 42))
			for _, s := range Generate(20, opt) {
				if !tt.re.MatchString(s) {
					t.Fatalf("%q does not match %v", s, tt.re)
				}
			}
		})
	}
}

func TestGenerateCount(t *testing.T) {
	t.Parallel()
	if got := Generate(0, GenerateOptions{}); got != nil {
		t.Errorf("count 0 = %v, want nil", got)
	}
	if got := Generate(3, GenerateOptions{}); len(got) != 3 {
		t.Errorf("count 3 returned %d strings", len(got))
	}
}

func TestBandString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		band Band
		want string
	}{
		{BandLow, "low"},
		{BandMedium, "medium"},
		{BandHigh, "high"},
		{Band(99), "medium"},
	}
	for _, tt := range tests {
		if got := tt.band.String(); got != tt.want {
			t.Errorf("Band(%d).String() = %q, want %q", tt.band, got, tt.want)
		}
	}
}
