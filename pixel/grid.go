package pixel

import "fmt"

// Grid is a row-major rectangle of samples. Rows[row][col] holds the sample
// at x=col, y=row.
type Grid struct {
	Rows [][]Sample
}

// New allocates a zeroed grid. Rows share one backing array.
func New(height, width int) *Grid {
	if height < 1 || width < 1 {
		return &Grid{}
	}

	pix := make([]Sample, height*width)
	rows := make([][]Sample, height)
	for row := range rows {
		rows[row] = pix[row*width : (row+1)*width : (row+1)*width]
	}
	return &Grid{Rows: rows}
}

// FromRows copies rows into a new grid after checking they form a rectangle.
func FromRows(rows [][]Sample) (*Grid, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	g := New(len(rows), len(rows[0]))
	for row := range rows {
		copy(g.Rows[row], rows[row])
	}
	return g, nil
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

func (g *Grid) Width() int {
	if g == nil || len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

func (g *Grid) At(row, col int) Sample {
	return g.Rows[row][col]
}

func (g *Grid) Set(row, col int, s Sample) {
	g.Rows[row][col] = s
}

// Validate returns an *InvalidGridError if g is nil, empty or jagged.
func (g *Grid) Validate() error {
	if g == nil {
		return &InvalidGridError{Reason: "nil grid"}
	}
	return validateRows(g.Rows)
}

func validateRows(rows [][]Sample) error {
	if len(rows) == 0 {
		return &InvalidGridError{Reason: "no rows"}
	}

	width := len(rows[0])
	if width == 0 {
		return &InvalidGridError{Reason: "no columns"}
	}
	for i, r := range rows {
		if len(r) != width {
			return &InvalidGridError{Reason: fmt.Sprintf("row %d has %d columns, expected %d", i, len(r), width)}
		}
	}
	return nil
}

func (g *Grid) Clone() *Grid {
	c := New(g.Height(), g.Width())
	for row := range c.Rows {
		copy(c.Rows[row], g.Rows[row])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g.Height() != o.Height() || g.Width() != o.Width() {
		return false
	}
	for row := range g.Rows {
		for col := range g.Rows[row] {
			if g.Rows[row][col] != o.Rows[row][col] {
				return false
			}
		}
	}
	return true
}
