package gradientbuilder

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"slices"
	"sync/atomic"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects the palette extraction algorithm.
type Method int

const (
	// MethodMedianCut recursively splits the sample along the widest
	// channel range. Deterministic; always fills the requested count.
	MethodMedianCut Method = iota
	// MethodKMeans clusters the sample and keeps the most diverse
	// cluster centers. Centers depend on random initialization.
	MethodKMeans
	// MethodDominantColor ranks candidate colors by coverage weight.
	MethodDominantColor
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodDominantColor:
		return "dominantcolor"
	default:
		return "mediancut"
	}
}

// ColorInfo is one palette entry as handed to the caller. ID is the
// stable handle for selection and stop assignment; presentation layers
// reference colors by ID, never by position, so selection state survives
// filtering and reordering. Rank records extraction order.
type ColorInfo struct {
	ID   string `json:"id"`
	RGB  RGB    `json:"rgb"`
	Hex  string `json:"hex"`
	Rank int    `json:"rank"`
}

// Result is a full extraction outcome, including the sampling context
// the palette came from.
type Result struct {
	Colors       []ColorInfo `json:"colors"`
	Method       string      `json:"method"`
	SourceWidth  int         `json:"sourceWidth"`
	SourceHeight int         `json:"sourceHeight"`
	SampleWidth  int         `json:"sampleWidth"`
	SampleHeight int         `json:"sampleHeight"`
	SampleCount  int         `json:"sampleCount"`
}

// colorIDs feeds nextColorID. IDs stay unique across every extraction in
// the process, so a stale handle from an earlier result can never alias
// a fresh color.
var colorIDs atomic.Uint64

func nextColorID() string {
	return fmt.Sprintf("color-%d", colorIDs.Add(1))
}

// Extract runs the pipeline end to end: sample img, reduce the sample to
// count colors with opt.Method, and wrap the palette in ColorInfo
// records. Median cut fills count exactly; kmeans and dominantcolor are
// best effort and may return fewer, falling back to median cut when they
// produce nothing at all.
func Extract(img image.Image, count int, opt Options) (*Result, error) {
	if img == nil {
		return nil, errors.New("extract palette: nil image")
	}
	if count < 1 {
		return nil, fmt.Errorf("extract palette: color count %d, want at least 1", count)
	}
	opt = opt.normalized()

	scaled := downscale(toNRGBA(img), opt.MaxDimension)
	pixels := filterPixels(scaled, opt)

	var palette []RGB
	switch opt.Method {
	case MethodKMeans:
		palette = kmeansPalette(pixels, count)
		if len(palette) == 0 {
			log.Println("palette warning: kmeans returned empty palette, falling back to median cut")
			palette = Quantize(pixels, count)
		}
	case MethodDominantColor:
		palette = dominantPalette(scaled, count)
		if len(palette) == 0 {
			log.Println("palette warning: dominantcolor returned empty palette, falling back to median cut")
			palette = Quantize(pixels, count)
		}
	default:
		palette = Quantize(pixels, count)
	}

	colors := make([]ColorInfo, len(palette))
	for i, c := range palette {
		colors[i] = ColorInfo{
			ID:   nextColorID(),
			RGB:  c,
			Hex:  c.Hex(),
			Rank: i + 1,
		}
	}

	sb := img.Bounds()
	wb := scaled.Bounds()
	return &Result{
		Colors:       colors,
		Method:       opt.Method.String(),
		SourceWidth:  sb.Dx(),
		SourceHeight: sb.Dy(),
		SampleWidth:  wb.Dx(),
		SampleHeight: wb.Dy(),
		SampleCount:  len(pixels),
	}, nil
}

// SortByBrightness orders colors from darkest to brightest, so the first
// entry suits the background end of a gradient.
func SortByBrightness(colors []ColorInfo) {
	slices.SortFunc(colors, func(a, b ColorInfo) int {
		la, lb := luminance(a.RGB), luminance(b.RGB)
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})
}

// ============ KMEANS ============

func kmeansPalette(pixels []RGB, k int) []RGB {
	if k <= 0 || len(pixels) == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large samples.
	maxSamples := 12000
	step := 1
	if len(pixels) > maxSamples {
		step = len(pixels)/maxSamples + 1
	}
	dataset := make(clusters.Observations, 0, min(len(pixels), maxSamples))
	for i := 0; i < len(pixels); i += step {
		dataset = append(dataset, clusters.Coordinates{
			float64(pixels[i].R) / 255.0,
			float64(pixels[i].G) / 255.0,
			float64(pixels[i].B) / 255.0,
		})
	}

	// Cluster finer than k, then keep the k most diverse centers.
	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Population order puts dominant tones first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{
			col:    col,
			weight: max(float64(len(c.Observations)), 1e-6),
		})
	}
	return selectDiverse(weighted, k)
}

// ============ DOMINANT COLOR ============

func dominantPalette(img image.Image, k int) []RGB {
	if k <= 0 {
		return nil
	}
	// Generous candidate pool; diversity selection prunes it down to k.
	candidates := dominantcolor.FindWeight(img, max(24, k*8))
	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		weighted = append(weighted, weightedColor{
			col:    col.Clamped(),
			weight: max(c.Weight, 1e-6),
		})
	}
	return selectDiverse(weighted, k)
}

// ============ DIVERSE SELECTION ============

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// selectDiverse greedily picks k of the weighted candidates: seed with
// the heaviest, then repeatedly take the candidate maximizing Lab
// distance to everything chosen so far, biased toward heavier ones.
func selectDiverse(cands []weightedColor, k int) []RGB {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	for i, c := range cands {
		l, a, b := c.col.Lab()
		items[i] = item{col: c.col, lab: [3]float64{l, a, b}, w: c.weight}
		if c.weight > maxW {
			maxW = c.weight
		}
	}
	if k > len(items) {
		k = len(items)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	chosen := make([]int, 0, k)
	used := make([]bool, len(items))

	// Seed with the heaviest candidate to stay close to dominant tones.
	seed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	chosen = append(chosen, seed)
	used[seed] = true

	for len(chosen) < k {
		best, bestScore := -1, -1.0
		for i := range items {
			if used[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range chosen {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				if d := d0*d0 + d1*d1 + d2*d2; d < minD2 {
					minD2 = d
				}
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		chosen = append(chosen, best)
	}

	out := make([]RGB, len(chosen))
	for i, idx := range chosen {
		out[i] = fromColorful(items[idx].col)
	}
	return out
}
