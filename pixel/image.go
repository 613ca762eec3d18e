package pixel

import (
	"image"
	"image/color"
)

// FromImage copies img into a new grid, keeping alpha as non-premultiplied
// 8-bit values.
func FromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, &InvalidGridError{Reason: "nil image"}
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, &InvalidGridError{Reason: "empty image bounds " + b.String()}
	}

	g := New(b.Dy(), b.Dx())

	if src, ok := img.(*image.NRGBA); ok {
		for row := range g.Rows {
			for col := range g.Rows[row] {
				i := src.PixOffset(b.Min.X+col, b.Min.Y+row)
				s := src.Pix[i : i+4 : i+4]
				g.Rows[row][col] = Sample{R: s[0], G: s[1], B: s[2], A: s[3]}
			}
		}
		return g, nil
	}

	for row := range g.Rows {
		for col := range g.Rows[row] {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.NRGBA)
			g.Rows[row][col] = Sample{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return g, nil
}

// Image returns a copy of g as an *image.NRGBA anchored at the origin.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for row := range g.Rows {
		off := row * img.Stride
		for col, s := range g.Rows[row] {
			i := off + col*4
			img.Pix[i+0] = s.R
			img.Pix[i+1] = s.G
			img.Pix[i+2] = s.B
			img.Pix[i+3] = s.A
		}
	}
	return img
}
