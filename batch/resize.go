package batch

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

// shrink scales g down to fit maxWidth x maxHeight, keeping its aspect
// ratio. A zero limit leaves that dimension free. Grids that already fit
// are returned as is.
func shrink(logger *slog.Logger, g *pixel.Grid, maxWidth, maxHeight int) (*pixel.Grid, error) {
	w, h := g.Width(), g.Height()
	scale := 1.0
	if maxWidth > 0 && w > maxWidth {
		scale = min(scale, float64(maxWidth)/float64(w))
	}
	if maxHeight > 0 && h > maxHeight {
		scale = min(scale, float64(maxHeight)/float64(h))
	}
	if scale == 1 {
		return g, nil
	}

	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))
	logger.Info("resizing", "width", dw, "height", dh)

	return pixel.FromImage(scaleImage(g.Image(), dw, dh))
}

func scaleImage(src image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
