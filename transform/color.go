package transform

import (
	"math"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

const (
	grayR = 0.2126
	grayG = 0.7125
	grayB = 0.0722

	vintageR = 1.2
	vintageG = 0.9
	vintageB = 0.8

	// DefaultContrastFactor is the stretch strength used when none is given.
	DefaultContrastFactor = 0.1
)

func mapSamples(g *pixel.Grid, fn func(pixel.Sample) pixel.Sample) *pixel.Grid {
	out := pixel.New(g.Height(), g.Width())
	for i, src := range g.Rows {
		dst := out.Rows[i]
		for j, s := range src {
			dst[j] = fn(s)
		}
	}
	return out
}

// Luminance is the gray level Grayscale assigns to s.
func Luminance(s pixel.Sample) uint8 {
	return pixel.ClampFloat(float64(s.R)*grayR + float64(s.G)*grayG + float64(s.B)*grayB)
}

// Grayscale replaces every sample by its luminance, keeping alpha.
func Grayscale(g *pixel.Grid) *pixel.Grid {
	return mapSamples(g, func(s pixel.Sample) pixel.Sample {
		y := Luminance(s)
		return pixel.Sample{R: y, G: y, B: y, A: s.A}
	})
}

// ContrastWeight is the multiplier applied to channel value v. Values above
// 128 are pulled down, the rest pushed up, proportionally to their distance
// from mid-gray scaled by 112.5.
func ContrastWeight(v uint8, factor float64) float64 {
	e := math.Abs((127.5 - float64(v)) / 112.5)
	if v > 128 {
		return 1 - e*factor
	}
	return 1 + e*factor
}

// Contrast stretches R, G and B independently; alpha is untouched.
func Contrast(g *pixel.Grid, factor float64) *pixel.Grid {
	var lut [256]uint8
	for v := range lut {
		lut[v] = pixel.ClampFloat(float64(v) * ContrastWeight(uint8(v), factor))
	}

	return mapSamples(g, func(s pixel.Sample) pixel.Sample {
		return pixel.Sample{R: lut[s.R], G: lut[s.G], B: lut[s.B], A: s.A}
	})
}

// Vintage warms the original colors: red is boosted, green and blue are
// damped. Products are truncated, then clamped.
func Vintage(g *pixel.Grid) *pixel.Grid {
	return mapSamples(g, func(s pixel.Sample) pixel.Sample {
		return pixel.Sample{
			R: pixel.TruncFloat(float64(s.R) * vintageR),
			G: pixel.TruncFloat(float64(s.G) * vintageG),
			B: pixel.TruncFloat(float64(s.B) * vintageB),
			A: s.A,
		}
	})
}

// Sepia is the vintage tint applied on top of Grayscale.
func Sepia(g *pixel.Grid) *pixel.Grid {
	return Vintage(Grayscale(g))
}
