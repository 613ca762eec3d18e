package transform

import (
	"math/rand/v2"
	"testing"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

var (
	red   = pixel.Opaque(255, 0, 0)
	green = pixel.Opaque(0, 255, 0)
	blue  = pixel.Opaque(0, 0, 255)
	white = pixel.Opaque(255, 255, 255)
)

// rgbw is the 2x2 grid [[red, green], [blue, white]].
func rgbw(t *testing.T) *pixel.Grid {
	t.Helper()
	g, err := pixel.FromRows([][]pixel.Sample{
		{red, green},
		{blue, white},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func randomGrid(h, w int, seed uint64) *pixel.Grid {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	g := pixel.New(h, w)
	for _, row := range g.Rows {
		for col := range row {
			row[col] = pixel.Sample{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
				A: uint8(rng.IntN(256)),
			}
		}
	}
	return g
}

func solidGrid(h, w int, s pixel.Sample) *pixel.Grid {
	g := pixel.New(h, w)
	for _, row := range g.Rows {
		for col := range row {
			row[col] = s
		}
	}
	return g
}
