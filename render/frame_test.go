package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/pixel"
)

func TestLayoutSize(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, image.Pt(40+25+255, 125), l.Size(40, 10))
	assert.Equal(t, image.Pt(300+25+255, 300), l.Size(200, 300))
	assert.Equal(t, l.Size(7, 90), l.Size(90, 7))
}

func TestLayoutValidate(t *testing.T) {
	require.NoError(t, DefaultLayout().Validate())
	assert.Error(t, Layout{DisplayHeight: 0, DisplayWidth: 1}.Validate())
	assert.Error(t, Layout{DisplayHeight: 1, DisplayWidth: 0}.Validate())
	assert.Error(t, Layout{DisplayHeight: 1, DisplayWidth: 1, Buffer: -1}.Validate())
}

func TestFrame(t *testing.T) {
	g := pixel.New(2, 3)
	for _, row := range g.Rows {
		for j := range row {
			row[j] = pixel.Opaque(255, 0, 0)
		}
	}
	g.Set(1, 1, pixel.Opaque(0, 0, 0))
	g.Set(1, 2, pixel.Opaque(0, 0, 0))
	hist := histogram.Compute(g)

	l := DefaultLayout()
	frame := Frame(g, hist, l)
	size := l.Size(2, 3)
	require.Equal(t, size, frame.Bounds().Max)

	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	assert.Equal(t, red, frame.RGBAAt(0, 0))
	assert.Equal(t, black, frame.RGBAAt(2, 1))
	assert.Equal(t, white, frame.RGBAAt(2, 2), "outside the image")
	assert.Equal(t, white, frame.RGBAAt(size.X-1, 0), "above the panel")

	panel := l.PanelRect(size)
	bottom := panel.Max.Y - 1

	// Red lands in bin 54 with the tallest bar, the two black samples in bin 0 at half height.
	redBin := histogram.Bin(pixel.Opaque(255, 0, 0))
	assert.Equal(t, black, frame.RGBAAt(panel.Min.X+redBin, panel.Min.Y))
	assert.Equal(t, black, frame.RGBAAt(panel.Min.X, bottom))
	assert.Equal(t, gray, frame.RGBAAt(panel.Min.X, panel.Min.Y+l.DisplayHeight/2-1))
	assert.Equal(t, black, frame.RGBAAt(panel.Min.X, panel.Min.Y+l.DisplayHeight/2+1))
	assert.Equal(t, gray, frame.RGBAAt(panel.Min.X+100, bottom))
}

func TestScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	scaled := Scale(img, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), scaled.Bounds())
	assert.Equal(t, color.RGBA{G: 255, A: 255}, scaled.At(4, 2))
	assert.Same(t, img, Scale(img, 1).(*image.RGBA))
}
