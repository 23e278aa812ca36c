package colour

import (
	"image"
	"math"
	"sort"
)

// maxSamples caps how many pixels DominantColours inspects; large images
// are grid-sampled down to roughly this many.
const maxSamples = 5000

// DominantColours returns up to n colours from an image, ranked by pixel
// frequency. Channels are bucketed to 4 bits before counting so
// near-identical shades collapse into one entry; the returned colours are
// the bucket centres. Ties break on hex order for determinism.
func DominantColours(img image.Image, n int) []RGB {
	if img == nil || n < 1 {
		return nil
	}

	counts := make(map[RGB]int)
	for _, c := range samplePixels(img) {
		counts[quantize(c)]++
	}

	ranked := make([]RGB, 0, len(counts))
	for c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i].Hex() < ranked[j].Hex()
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// quantize buckets each channel to its high 4 bits and returns the bucket
// centre.
func quantize(c RGB) RGB {
	return RGB{
		R: c.R&0xf0 | 0x08,
		G: c.G&0xf0 | 0x08,
		B: c.B&0xf0 | 0x08,
	}
}

// samplePixels collects pixels from the image, grid-sampling large images
// so no more than about maxSamples are read.
func samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels
}
