package gradientbuilder

const (
	defaultMaxDimension   = 200
	defaultAlphaThreshold = 125
	defaultWhiteThreshold = 240
	defaultBlackThreshold = 15
)

type Options struct {
	// Longest side of the working image after downscale.
	// Bounds quantization cost independent of input resolution: median cut
	// sorts O(n log n) per level. Ideal start: 100-300.
	// Too low => coarse sampling loses minor palette colors.
	MaxDimension int
	// Pixels with alpha at or below this are dropped before quantization
	// (not meaningfully visible). Zero selects the default (125).
	AlphaThreshold uint8
	// Pixels with all three channels at or above this are dropped as
	// background whitespace. Zero selects the default (240).
	WhiteThreshold uint8
	// Pixels with all three channels below this are dropped as shadow
	// noise. Zero disables the filter; the default is 15.
	BlackThreshold uint8
	// Extraction algorithm. MethodMedianCut is deterministic and the
	// only one guaranteed to fill the requested color count exactly.
	Method Method
}

func DefaultOptions() Options {
	return Options{
		MaxDimension:   defaultMaxDimension,
		AlphaThreshold: defaultAlphaThreshold,
		WhiteThreshold: defaultWhiteThreshold,
		BlackThreshold: defaultBlackThreshold,
		Method:         MethodMedianCut,
	}
}

// normalized fills zero sampling fields with their defaults.
// BlackThreshold is left alone: zero means the filter is off.
func (o Options) normalized() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = defaultMaxDimension
	}
	if o.AlphaThreshold == 0 {
		o.AlphaThreshold = defaultAlphaThreshold
	}
	if o.WhiteThreshold == 0 {
		o.WhiteThreshold = defaultWhiteThreshold
	}
	return o
}
