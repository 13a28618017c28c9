package gradientbuilder

import (
	"math"
	"math/bits"
	"slices"
)

// Quantize reduces pixels to exactly count representative colors with
// median cut: recursively split the bucket with the widest channel range
// at the positional median, then average each terminal bucket. Output
// order follows split history and is deterministic for identical input.
// The input slice is reordered in place by the recursive sorts.
// count <= 0 returns nil; an empty input returns count black colors.
func Quantize(pixels []RGB, count int) []RGB {
	if count <= 0 {
		return nil
	}
	buckets := leafBuckets(pixels, splitDepth(count))
	colors := make([]RGB, len(buckets))
	for i, b := range buckets {
		colors[i] = averageColor(b)
	}
	// Depth guarantees len >= count except on the degenerate empty path,
	// which collapses early and gets padded with black instead.
	if len(colors) > count {
		colors = colors[:count]
	}
	for len(colors) < count {
		colors = append(colors, RGB{})
	}
	return colors
}

// splitDepth is ceil(log2(count)), the recursion depth that yields at
// least count terminal buckets.
func splitDepth(count int) int {
	return bits.Len(uint(count - 1))
}

// leafBuckets partitions pixels into the terminal buckets of the
// median-cut tree, ordered by split history with lower halves first.
// Buckets are disjoint subslices covering pixels exactly; an empty
// bucket terminates its branch immediately.
func leafBuckets(pixels []RGB, depth int) [][]RGB {
	if depth == 0 || len(pixels) == 0 {
		return [][]RGB{pixels}
	}
	ch := widestChannel(pixels)
	slices.SortStableFunc(pixels, func(a, b RGB) int {
		return int(a.channel(ch)) - int(b.channel(ch))
	})
	mid := len(pixels) / 2
	lower := leafBuckets(pixels[:mid], depth-1)
	return append(lower, leafBuckets(pixels[mid:], depth-1)...)
}

// widestChannel picks the channel with the greatest max-min spread.
// Ties resolve red, then green, then blue, in that fixed order.
func widestChannel(pixels []RGB) int {
	minR, minG, minB := uint8(255), uint8(255), uint8(255)
	maxR, maxG, maxB := uint8(0), uint8(0), uint8(0)
	for _, p := range pixels {
		minR = min(minR, p.R)
		maxR = max(maxR, p.R)
		minG = min(minG, p.G)
		maxG = max(maxG, p.G)
		minB = min(minB, p.B)
		maxB = max(maxB, p.B)
	}
	rangeR := maxR - minR
	rangeG := maxG - minG
	rangeB := maxB - minB
	if rangeR >= rangeG && rangeR >= rangeB {
		return 0
	}
	if rangeG >= rangeB {
		return 1
	}
	return 2
}

// averageColor collapses a bucket to its channel-wise mean, rounded half
// away from zero. An empty bucket averages to black, a defined
// degenerate value rather than an error.
func averageColor(pixels []RGB) RGB {
	if len(pixels) == 0 {
		return RGB{}
	}
	var r, g, b int
	for _, p := range pixels {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
	}
	n := float64(len(pixels))
	return RGB{
		R: uint8(math.Round(float64(r) / n)),
		G: uint8(math.Round(float64(g) / n)),
		B: uint8(math.Round(float64(b) / n)),
	}
}

func (c RGB) channel(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}
