package transform

import "github.com/NotActuallyHim/ImageEditor/pixel"

// Entry points for callers that hold a grid and pick a filter directly.
// Each one validates the grid and returns a newly allocated result.

func ApplyRotate(g *pixel.Grid) (*pixel.Grid, error) {
	return Rotation().Apply(g)
}

func ApplyGrayscale(g *pixel.Grid) (*pixel.Grid, error) {
	return GrayscaleFilter().Apply(g)
}

func ApplyFlipHorizontal(g *pixel.Grid) (*pixel.Grid, error) {
	return FlipH().Apply(g)
}

func ApplyFlipVertical(g *pixel.Grid) (*pixel.Grid, error) {
	return FlipV().Apply(g)
}

func ApplyBlur(g *pixel.Grid, radius int) (*pixel.Grid, error) {
	return BlurFilter(radius).Apply(g)
}

func ApplyContrast(g *pixel.Grid, factor float64) (*pixel.Grid, error) {
	return ContrastFilter(factor).Apply(g)
}

func ApplyVintage(g *pixel.Grid) (*pixel.Grid, error) {
	return VintageFilter().Apply(g)
}
