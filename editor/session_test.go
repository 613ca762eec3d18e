package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/pixel"
	"github.com/NotActuallyHim/ImageEditor/transform"
)

func testGrid(t *testing.T) *pixel.Grid {
	t.Helper()
	g, err := pixel.FromRows([][]pixel.Sample{
		{pixel.Opaque(255, 0, 0), pixel.Opaque(0, 255, 0), pixel.Opaque(9, 9, 9)},
		{pixel.Opaque(0, 0, 255), pixel.Opaque(255, 255, 255), pixel.Opaque(99, 99, 99)},
	})
	require.NoError(t, err)
	return g
}

func TestNewRejectsInvalidGrid(t *testing.T) {
	_, err := New(&pixel.Grid{})
	var invalid *pixel.InvalidGridError
	require.ErrorAs(t, err, &invalid)
}

func TestNewCopiesGrid(t *testing.T) {
	g := testGrid(t)
	s, err := New(g)
	require.NoError(t, err)

	g.Set(0, 0, pixel.Sample{})
	assert.Equal(t, pixel.Opaque(255, 0, 0), s.Current().At(0, 0))
}

func TestPressDefaultKeys(t *testing.T) {
	g := testGrid(t)

	tests := []struct {
		key  rune
		want func() *pixel.Grid
	}{
		{'1', func() *pixel.Grid { return transform.Rotate(g) }},
		{'2', func() *pixel.Grid { return transform.Grayscale(g) }},
		{'3', func() *pixel.Grid { return transform.FlipHorizontal(g) }},
		{'4', func() *pixel.Grid { return transform.FlipVertical(g) }},
		{'5', func() *pixel.Grid {
			out, err := transform.Blur(g, transform.DefaultBlurRadius)
			require.NoError(t, err)
			return out
		}},
		{'6', func() *pixel.Grid { return transform.Contrast(g, transform.DefaultContrastFactor) }},
		{'7', func() *pixel.Grid { return transform.Vintage(g) }},
		{'8', func() *pixel.Grid { return transform.Sepia(g) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			s, err := New(g)
			require.NoError(t, err)

			ok, err := s.Press(tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, tt.want().Equal(s.Current()))
			assert.Equal(t, 1, s.Applied())
		})
	}
}

func TestPressUnbound(t *testing.T) {
	s, err := New(testGrid(t))
	require.NoError(t, err)
	before := s.Current()

	ok, err := s.Press('z')
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, before, s.Current())
	assert.Zero(t, s.Applied())
}

func TestCustomKeys(t *testing.T) {
	s, err := New(testGrid(t), WithKeys(map[rune]transform.Filter{'b': transform.BlurFilter(1)}))
	require.NoError(t, err)

	f, ok := s.Binding('b')
	require.True(t, ok)
	assert.Equal(t, transform.BlurFilter(1), f)

	_, ok = s.Binding('1')
	assert.False(t, ok)
}

func TestRedrawHook(t *testing.T) {
	var calls int
	var last *pixel.Grid
	var lastHist *histogram.Histogram
	s, err := New(testGrid(t), WithRedraw(func(g *pixel.Grid, h *histogram.Histogram) error {
		calls++
		last, lastHist = g, h
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, s.Redraw())
	require.NoError(t, s.Apply(transform.GrayscaleFilter()))
	assert.Equal(t, 2, calls)
	assert.Same(t, s.Current(), last)
	assert.Equal(t, histogram.Compute(s.Current()), lastHist)
	assert.Equal(t, 6, lastHist.Total())
}

func TestRedrawErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	s, err := New(testGrid(t), WithRedraw(func(*pixel.Grid, *histogram.Histogram) error { return boom }))
	require.NoError(t, err)

	_, err = s.Press('1')
	require.ErrorIs(t, err, boom)
}

func TestHistogramCachedPerGrid(t *testing.T) {
	s, err := New(testGrid(t))
	require.NoError(t, err)

	h := s.Histogram()
	assert.Same(t, h, s.Histogram())

	require.NoError(t, s.Apply(transform.GrayscaleFilter()))
	assert.NotSame(t, h, s.Histogram())
	assert.Equal(t, histogram.Compute(s.Current()), s.Histogram())
}

func TestApplyErrorKeepsState(t *testing.T) {
	s, err := New(testGrid(t))
	require.NoError(t, err)
	before := s.Current()

	err = s.Apply(transform.BlurFilter(-1))
	require.ErrorIs(t, err, transform.ErrInvalidRadius)
	assert.Same(t, before, s.Current())
}

func TestReset(t *testing.T) {
	g := testGrid(t)
	s, err := New(g)
	require.NoError(t, err)

	for _, key := range "1357" {
		_, err = s.Press(key)
		require.NoError(t, err)
	}
	assert.Equal(t, 4, s.Applied())
	assert.False(t, g.Equal(s.Current()))

	require.NoError(t, s.Reset())
	assert.True(t, g.Equal(s.Current()))
	assert.Zero(t, s.Applied())
}

func TestRotateKeyFourTimes(t *testing.T) {
	g := testGrid(t)
	s, err := New(g)
	require.NoError(t, err)

	for range 4 {
		_, err = s.Press('1')
		require.NoError(t, err)
	}
	assert.True(t, g.Equal(s.Current()))
}
