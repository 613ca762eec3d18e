package pixel

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(3, 5)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Width())
	require.NoError(t, g.Validate())

	g.Set(2, 4, Opaque(1, 2, 3))
	assert.Equal(t, Opaque(1, 2, 3), g.At(2, 4))
	assert.Equal(t, Sample{}, g.At(2, 3), "rows must not overlap")
}

func TestValidate(t *testing.T) {
	var invalid *InvalidGridError

	var nilGrid *Grid
	require.ErrorAs(t, nilGrid.Validate(), &invalid)
	require.ErrorAs(t, (&Grid{}).Validate(), &invalid)
	require.ErrorAs(t, (&Grid{Rows: [][]Sample{{}}}).Validate(), &invalid)

	jagged := &Grid{Rows: [][]Sample{make([]Sample, 2), make([]Sample, 3)}}
	err := jagged.Validate()
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "row 1 has 3 columns")
}

func TestFromRowsCopies(t *testing.T) {
	rows := [][]Sample{{Opaque(1, 1, 1), Opaque(2, 2, 2)}}
	g, err := FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = Opaque(9, 9, 9)
	assert.Equal(t, Opaque(1, 1, 1), g.At(0, 0))

	_, err = FromRows(nil)
	require.Error(t, err)
}

func TestCloneAndEqual(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 1, Opaque(10, 20, 30))

	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Set(0, 1, Opaque(0, 0, 0))
	assert.False(t, g.Equal(c))
	assert.Equal(t, Opaque(10, 20, 30), g.At(0, 1))

	assert.False(t, g.Equal(New(2, 3)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, uint8(0), Clamp(-5))
	assert.Equal(t, uint8(255), Clamp(300))
	assert.Equal(t, uint8(17), Clamp(17))

	assert.Equal(t, uint8(3), ClampFloat(2.5))
	assert.Equal(t, uint8(2), ClampFloat(2.49))
	assert.Equal(t, uint8(255), ClampFloat(1e9))
	assert.Equal(t, uint8(0), ClampFloat(-3))

	assert.Equal(t, uint8(2), TruncFloat(2.99))
	assert.Equal(t, uint8(255), TruncFloat(306))
}

func TestSampleRGBA(t *testing.T) {
	r, g, b, a := Opaque(255, 0, 128).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xFFFF), a)

	r, _, _, a = Sample{R: 255, A: 0}.RGBA()
	assert.Zero(t, r)
	assert.Zero(t, a)
}

func TestFromImageLayout(t *testing.T) {
	// 3 wide, 2 tall, offset bounds.
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(12, 20, color.NRGBA{R: 200, A: 0xFF})
	img.SetNRGBA(10, 21, color.NRGBA{G: 100, A: 0x40})

	g, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, Sample{R: 200, A: 0xFF}, g.At(0, 2))
	assert.Equal(t, Sample{G: 100, A: 0x40}, g.At(1, 0))
}

func TestFromImageGeneric(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})

	g, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, Opaque(10, 20, 30), g.At(0, 1))
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rectangle{}))
	var invalid *InvalidGridError
	require.ErrorAs(t, err, &invalid)
}

func TestImageRoundTrip(t *testing.T) {
	g := New(2, 3)
	g.Set(1, 2, Sample{R: 1, G: 2, B: 3, A: 4})
	g.Set(0, 0, Opaque(250, 251, 252))

	back, err := FromImage(g.Image())
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("bad header")
	err := error(&DecodeError{Path: "a.png", Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"a.png"`)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "a.png", de.Path)
}
