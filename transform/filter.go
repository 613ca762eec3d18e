package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

var ErrUnknownFilter = errors.New("unknown filter")

// Kind selects one of the available transforms.
type Kind int

const (
	KindRotate Kind = iota + 1
	KindGrayscale
	KindFlipHorizontal
	KindFlipVertical
	KindBlur
	KindContrast
	KindVintage
	KindSepia
)

var kindNames = map[Kind]string{
	KindRotate:         "rotate",
	KindGrayscale:      "grayscale",
	KindFlipHorizontal: "flip-horizontal",
	KindFlipVertical:   "flip-vertical",
	KindBlur:           "blur",
	KindContrast:       "contrast",
	KindVintage:        "vintage",
	KindSepia:          "sepia",
}

// Kinds lists every kind in key order.
var Kinds = []Kind{
	KindRotate, KindGrayscale, KindFlipHorizontal, KindFlipVertical,
	KindBlur, KindContrast, KindVintage, KindSepia,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func parseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rotate":
		return KindRotate, true
	case "grayscale", "gray", "grey":
		return KindGrayscale, true
	case "flip-horizontal", "fliph", "hflip":
		return KindFlipHorizontal, true
	case "flip-vertical", "flipv", "vflip":
		return KindFlipVertical, true
	case "blur":
		return KindBlur, true
	case "contrast":
		return KindContrast, true
	case "vintage":
		return KindVintage, true
	case "sepia":
		return KindSepia, true
	}
	return 0, false
}

// Filter is a transform together with its parameters. Radius is only read by
// KindBlur, Factor only by KindContrast.
type Filter struct {
	Kind   Kind
	Radius int
	Factor float64
}

func Rotation() Filter        { return Filter{Kind: KindRotate} }
func GrayscaleFilter() Filter { return Filter{Kind: KindGrayscale} }
func FlipH() Filter           { return Filter{Kind: KindFlipHorizontal} }
func FlipV() Filter           { return Filter{Kind: KindFlipVertical} }
func VintageFilter() Filter   { return Filter{Kind: KindVintage} }
func SepiaFilter() Filter     { return Filter{Kind: KindSepia} }

func BlurFilter(radius int) Filter {
	return Filter{Kind: KindBlur, Radius: radius}
}

func ContrastFilter(factor float64) Filter {
	return Filter{Kind: KindContrast, Factor: factor}
}

// Apply validates g and returns a new grid with the filter applied. g is
// never modified.
func (f Filter) Apply(g *pixel.Grid) (*pixel.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch f.Kind {
	case KindRotate:
		return Rotate(g), nil
	case KindGrayscale:
		return Grayscale(g), nil
	case KindFlipHorizontal:
		return FlipHorizontal(g), nil
	case KindFlipVertical:
		return FlipVertical(g), nil
	case KindBlur:
		return Blur(g, f.Radius)
	case KindContrast:
		return Contrast(g, f.Factor), nil
	case KindVintage:
		return Vintage(g), nil
	case KindSepia:
		return Sepia(g), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, f.Kind)
}

func (f Filter) String() string {
	switch f.Kind {
	case KindBlur:
		return fmt.Sprintf("%s:%d", f.Kind, f.Radius)
	case KindContrast:
		return fmt.Sprintf("%s:%s", f.Kind, strconv.FormatFloat(f.Factor, 'g', -1, 64))
	}
	return f.Kind.String()
}

// ParseFilter reads "name" or "name:param", e.g. "rotate", "blur:3" or
// "contrast:0.25". Blur and contrast fall back to DefaultBlurRadius and
// DefaultContrastFactor when no parameter is given.
func ParseFilter(s string) (Filter, error) {
	return ParseFilterWith(s, DefaultBlurRadius, DefaultContrastFactor)
}

// ParseFilterWith is ParseFilter with caller supplied fallbacks for a
// missing blur radius or contrast factor.
func ParseFilterWith(s string, radius int, factor float64) (Filter, error) {
	name, param, hasParam := strings.Cut(s, ":")
	kind, ok := parseKind(name)
	if !ok {
		return Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}

	f := Filter{Kind: kind}
	switch kind {
	case KindBlur:
		f.Radius = radius
		if hasParam {
			r, err := strconv.Atoi(strings.TrimSpace(param))
			if err != nil {
				return Filter{}, fmt.Errorf("invalid blur radius %q: %w", param, err)
			}
			if r < 0 {
				return Filter{}, fmt.Errorf("%w: %d", ErrInvalidRadius, r)
			}
			f.Radius = r
		}
	case KindContrast:
		f.Factor = factor
		if hasParam {
			v, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid contrast factor %q: %w", param, err)
			}
			f.Factor = v
		}
	default:
		if hasParam {
			return Filter{}, fmt.Errorf("filter %s takes no parameter, got %q", kind, param)
		}
	}
	return f, nil
}

func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Chain applies filters in order, returning the last grid.
func Chain(g *pixel.Grid, filters ...Filter) (*pixel.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	cur := g
	for _, f := range filters {
		next, err := f.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("could not apply %s: %w", f, err)
		}
		cur = next
	}
	return cur, nil
}
