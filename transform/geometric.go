package transform

import "github.com/NotActuallyHim/ImageEditor/pixel"

// Rotate turns g 90 degrees clockwise. It is the transpose of g mirrored
// horizontally, computed in a single pass: out[j][h-1-i] = in[i][j].
func Rotate(g *pixel.Grid) *pixel.Grid {
	h, w := g.Height(), g.Width()
	out := pixel.New(w, h)
	for i, src := range g.Rows {
		for j, s := range src {
			out.Rows[j][h-1-i] = s
		}
	}
	return out
}

// FlipHorizontal mirrors g left to right.
func FlipHorizontal(g *pixel.Grid) *pixel.Grid {
	w := g.Width()
	out := pixel.New(g.Height(), w)
	for i, src := range g.Rows {
		dst := out.Rows[i]
		for j := range dst {
			dst[j] = src[w-1-j]
		}
	}
	return out
}

// FlipVertical mirrors g top to bottom.
func FlipVertical(g *pixel.Grid) *pixel.Grid {
	h := g.Height()
	out := pixel.New(h, g.Width())
	for i := range out.Rows {
		copy(out.Rows[i], g.Rows[h-1-i])
	}
	return out
}
