// Package editor holds the state of an interactive editing session: the
// current grid, the key bindings that select filters, and the histogram of
// what is on screen.
package editor

import (
	"fmt"
	"maps"

	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/pixel"
	"github.com/NotActuallyHim/ImageEditor/transform"
)

// RedrawFunc is called with the current grid and its histogram whenever
// they change.
type RedrawFunc func(*pixel.Grid, *histogram.Histogram) error

// DefaultKeys binds the number keys to filters: 1 rotate, 2 grayscale,
// 3 flip horizontal, 4 flip vertical, 5 blur, 6 contrast, 7 vintage and
// 8 sepia.
func DefaultKeys(radius int, factor float64) map[rune]transform.Filter {
	return map[rune]transform.Filter{
		'1': transform.Rotation(),
		'2': transform.GrayscaleFilter(),
		'3': transform.FlipH(),
		'4': transform.FlipV(),
		'5': transform.BlurFilter(radius),
		'6': transform.ContrastFilter(factor),
		'7': transform.VintageFilter(),
		'8': transform.SepiaFilter(),
	}
}

type Option func(*Session)

func WithKeys(keys map[rune]transform.Filter) Option {
	return func(s *Session) {
		s.keys = keys
	}
}

func WithRedraw(fn RedrawFunc) Option {
	return func(s *Session) {
		s.redraw = fn
	}
}

// Session owns the current grid. Each filter replaces it with a new grid;
// grids handed out by Current are never modified afterwards. A Session is
// not safe for concurrent use.
type Session struct {
	initial *pixel.Grid
	current *pixel.Grid
	hist    *histogram.Histogram
	keys    map[rune]transform.Filter
	redraw  RedrawFunc
	applied int
}

// New starts a session on a private copy of g.
func New(g *pixel.Grid, opts ...Option) (*Session, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		initial: g.Clone(),
		keys:    DefaultKeys(transform.DefaultBlurRadius, transform.DefaultContrastFactor),
	}
	s.current = s.initial
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) Current() *pixel.Grid {
	return s.current
}

// Applied is the number of filters applied since the start or the last
// Reset.
func (s *Session) Applied() int {
	return s.applied
}

// Histogram returns the histogram of the current grid, computing it at most
// once per grid.
func (s *Session) Histogram() *histogram.Histogram {
	if s.hist == nil {
		s.hist = histogram.Compute(s.current)
	}
	return s.hist
}

// Binding returns the filter bound to key.
func (s *Session) Binding(key rune) (transform.Filter, bool) {
	f, ok := s.keys[key]
	return f, ok
}

// Keys returns a copy of the key bindings.
func (s *Session) Keys() map[rune]transform.Filter {
	return maps.Clone(s.keys)
}

// Apply replaces the current grid with f applied to it and redraws. On
// error the current grid is left as it was.
func (s *Session) Apply(f transform.Filter) error {
	next, err := f.Apply(s.current)
	if err != nil {
		return fmt.Errorf("could not apply %s: %w", f, err)
	}

	s.set(next)
	s.applied++
	return s.Redraw()
}

// Press applies the filter bound to key. It reports false for unbound keys,
// which leave the session untouched.
func (s *Session) Press(key rune) (bool, error) {
	f, ok := s.keys[key]
	if !ok {
		return false, nil
	}
	return true, s.Apply(f)
}

// Reset goes back to the grid the session started with and redraws.
func (s *Session) Reset() error {
	s.set(s.initial)
	s.applied = 0
	return s.Redraw()
}

// Redraw hands the current state to the redraw hook, if any.
func (s *Session) Redraw() error {
	if s.redraw == nil {
		return nil
	}
	return s.redraw(s.current, s.Histogram())
}

func (s *Session) set(g *pixel.Grid) {
	s.current = g
	s.hist = nil
}
