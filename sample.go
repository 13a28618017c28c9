package gradientbuilder

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Sample produces the filtered pixel list quantization works on: the
// image downscaled so its longer side fits opt.MaxDimension, minus
// translucent, near-white and near-black pixels. A fully filtered image
// yields an empty list. No image data is retained after the call.
func Sample(img image.Image, opt Options) []RGB {
	if img == nil {
		return nil
	}
	opt = opt.normalized()
	return filterPixels(downscale(toNRGBA(img), opt.MaxDimension), opt)
}

// toNRGBA returns img as an origin-anchored, tightly packed NRGBA.
// Views with an offset origin or a wider stride (SubImage results) are
// copied, so the flat Pix walk in filterPixels sees exactly the image's
// own pixels.
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok &&
		src.Rect.Min == (image.Point{}) &&
		src.Stride == 4*src.Rect.Dx() &&
		len(src.Pix) == src.Stride*src.Rect.Dy() {
		return src
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// downscale shrinks src preserving aspect ratio so max(w,h) <= maxDim.
// Images already within bounds are returned as-is.
func downscale(src *image.NRGBA, maxDim int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	scale := float64(maxDim) / float64(max(w, h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func filterPixels(src *image.NRGBA, opt Options) []RGB {
	px := src.Pix
	out := make([]RGB, 0, len(px)/4)
	for i := 0; i+3 < len(px); i += 4 {
		r, g, b, a := px[i], px[i+1], px[i+2], px[i+3]
		if a <= opt.AlphaThreshold {
			continue
		}
		if r >= opt.WhiteThreshold && g >= opt.WhiteThreshold && b >= opt.WhiteThreshold {
			continue
		}
		if opt.BlackThreshold > 0 && r < opt.BlackThreshold && g < opt.BlackThreshold && b < opt.BlackThreshold {
			continue
		}
		out = append(out, RGB{R: r, G: g, B: b})
	}
	return out
}
