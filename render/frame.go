// Package render lays out a grid next to its brightness histogram, the way
// the editor panel shows them.
package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/pixel"
)

var (
	Background = color.White
	PanelColor = color.Gray{Y: 128}
	BarColor   = color.Black
)

// Layout sizes the histogram panel. The panel is DisplayWidth by
// DisplayHeight pixels, sits against the right edge and Buffer pixels below
// the top.
type Layout struct {
	DisplayHeight int `mapstructure:"display_height"`
	DisplayWidth  int `mapstructure:"display_width"`
	Buffer        int `mapstructure:"buffer"`
}

func DefaultLayout() Layout {
	return Layout{
		DisplayHeight: 100,
		DisplayWidth:  histogram.Bins,
		Buffer:        25,
	}
}

func (l Layout) Validate() error {
	switch {
	case l.DisplayHeight < 1:
		return fmt.Errorf("invalid display height: %d", l.DisplayHeight)
	case l.DisplayWidth < 1:
		return fmt.Errorf("invalid display width: %d", l.DisplayWidth)
	case l.Buffer < 0:
		return fmt.Errorf("invalid buffer: %d", l.Buffer)
	}
	return nil
}

// Size returns the frame dimensions for an image of the given size. The
// image area is square on its longest side so a rotation never resizes the
// frame.
func (l Layout) Size(height, width int) image.Point {
	side := max(height, width)
	return image.Pt(side+l.Buffer+l.DisplayWidth, max(l.Buffer+l.DisplayHeight, side))
}

// PanelRect is where the histogram panel goes in a frame of the given size.
func (l Layout) PanelRect(frame image.Point) image.Rectangle {
	x0 := frame.X - l.DisplayWidth
	return image.Rect(x0, l.Buffer, frame.X, l.Buffer+l.DisplayHeight)
}

// Frame draws g at the origin and hist in its panel on a white canvas.
func Frame(g *pixel.Grid, hist *histogram.Histogram, l Layout) *image.RGBA {
	size := l.Size(g.Height(), g.Width())
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	src := g.Image()
	draw.Draw(dst, src.Bounds(), src, image.Point{}, draw.Over)

	drawHistogram(dst, hist, l)
	return dst
}

func drawHistogram(dst draw.Image, hist *histogram.Histogram, l Layout) {
	panel := l.PanelRect(dst.Bounds().Max)
	draw.Draw(dst, panel, image.NewUniform(PanelColor), image.Point{}, draw.Src)

	bar := image.NewUniform(BarColor)
	for i, h := range hist.Bars(l.DisplayHeight) {
		if i >= l.DisplayWidth || h == 0 {
			continue
		}
		x := panel.Min.X + i
		r := image.Rect(x, panel.Max.Y-h, x+1, panel.Max.Y)
		draw.Draw(dst, r, bar, image.Point{}, draw.Src)
	}
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling so
// small images stay legible in a preview.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
