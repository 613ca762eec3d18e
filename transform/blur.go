package transform

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/NotActuallyHim/ImageEditor/parallel"
	"github.com/NotActuallyHim/ImageEditor/pixel"
)

// DefaultBlurRadius is the kernel radius used when none is given.
const DefaultBlurRadius = 5

var ErrInvalidRadius = errors.New("blur radius must not be negative")

// Kernel is a normalized square Gaussian kernel of side 2*Radius+1.
// Weights[p+Radius][k+Radius] is the weight of offset (p, k).
// Kernels returned by GaussianKernel are shared and must not be modified.
type Kernel struct {
	Radius  int
	Weights [][]float64
}

func (k *Kernel) Size() int {
	return 2*k.Radius + 1
}

func (k *Kernel) Sum() float64 {
	var sum float64
	for _, row := range k.Weights {
		for _, w := range row {
			sum += w
		}
	}
	return sum
}

var kernels = struct {
	sync.Mutex
	byRadius map[int]*Kernel
}{byRadius: map[int]*Kernel{}}

// GaussianKernel returns the normalized kernel for radius, with
// sigma = radius/3. Radius 0 is the identity kernel.
func GaussianKernel(radius int) (*Kernel, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	kernels.Lock()
	defer kernels.Unlock()

	if k, ok := kernels.byRadius[radius]; ok {
		return k, nil
	}
	k := newGaussianKernel(radius)
	kernels.byRadius[radius] = k
	return k, nil
}

func newGaussianKernel(radius int) *Kernel {
	k := &Kernel{Radius: radius}
	size := k.Size()
	k.Weights = make([][]float64, size)
	for i := range k.Weights {
		k.Weights[i] = make([]float64, size)
	}
	if radius == 0 {
		k.Weights[0][0] = 1
		return k
	}

	sigma := float64(radius) / 3.0
	twoSigmaSq := 2 * sigma * sigma

	var sum float64
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			w := math.Exp(-float64(i*i+j*j)/twoSigmaSq) / (math.Pi * twoSigmaSq)
			k.Weights[i+radius][j+radius] = w
			sum += w
		}
	}

	for _, row := range k.Weights {
		for j := range row {
			row[j] /= sum
		}
	}
	return k
}

// Blur convolves g with the Gaussian kernel of the given radius using
// GOMAXPROCS workers. See BlurWorkers.
func Blur(g *pixel.Grid, radius int) (*pixel.Grid, error) {
	return BlurWorkers(g, radius, 0)
}

// BlurWorkers convolves R, G and B with the Gaussian kernel of the given
// radius. Samples outside g repeat the nearest edge sample. Alpha is copied
// from the source sample. Rows are spread over workers goroutines; the
// result does not depend on their number.
func BlurWorkers(g *pixel.Grid, radius, workers int) (*pixel.Grid, error) {
	k, err := GaussianKernel(radius)
	if err != nil {
		return nil, err
	}

	h, w := g.Height(), g.Width()
	out := pixel.New(h, w)

	parallel.Rows(h, workers, func(row int) {
		dst := out.Rows[row]
		for col := range dst {
			var r, gr, b float64
			for p := -radius; p <= radius; p++ {
				src := g.Rows[clampIndex(row+p, h)]
				weights := k.Weights[p+radius]
				for q := -radius; q <= radius; q++ {
					s := src[clampIndex(col+q, w)]
					wt := weights[q+radius]
					r += float64(s.R) * wt
					gr += float64(s.G) * wt
					b += float64(s.B) * wt
				}
			}
			dst[col] = pixel.Sample{
				R: pixel.ClampFloat(r),
				G: pixel.ClampFloat(gr),
				B: pixel.ClampFloat(b),
				A: g.Rows[row][col].A,
			}
		}
	})

	return out, nil
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
