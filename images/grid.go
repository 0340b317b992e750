package images

import (
	"strings"

	"github.com/pkg/errors"
)

// Grid is a rectangular, row-major H×W collection of colors. Every cell is
// allocated and initialised when the grid is built; there are no empty cells.
//
// A Grid is owned by whoever holds it. Same-dimension operations mutate it in
// place, dimension-changing operations return a new Grid.
type Grid struct {
	height int
	width  int
	pix    []Color
}

// NewGrid returns an h×w grid with every cell set to Black.
func NewGrid(h, w int) (*Grid, error) {
	return NewGridFilled(h, w, Black)
}

// NewGridFilled returns an h×w grid with every cell set to c.
func NewGridFilled(h, w int, c Color) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, errors.Wrapf(ErrMalformedGrid, "dimensions %dx%d", h, w)
	}
	g := newGrid(h, w)
	if c != (Color{}) {
		for i := range g.pix {
			g.pix[i] = c
		}
	}
	return g, nil
}

// GridFromRows copies rows into a new grid. rows must be non-empty and every
// row must have the same non-zero length, otherwise ErrMalformedGrid is returned.
func GridFromRows(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedGrid, "no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, errors.Wrap(ErrMalformedGrid, "row 0 is empty")
	}
	g := newGrid(len(rows), w)
	for r, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrMalformedGrid, "row %d has %d columns, want %d", r, len(row), w)
		}
		copy(g.pix[r*w:(r+1)*w], row)
	}
	return g, nil
}

// MustGridFromRows is GridFromRows that panics on error. Intended for fixtures.
func MustGridFromRows(rows [][]Color) *Grid {
	g, err := GridFromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// newGrid allocates without validating; callers guarantee h, w >= 1.
func newGrid(h, w int) *Grid {
	return &Grid{height: h, width: w, pix: make([]Color, h*w)}
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// In reports whether (row, col) addresses a cell of g.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the color at (row, col). It panics with ErrOutOfBounds outside the grid.
func (g *Grid) At(row, col int) Color {
	return g.pix[g.index(row, col)]
}

// Set stores c at (row, col). It panics with ErrOutOfBounds outside the grid.
func (g *Grid) Set(row, col int, c Color) {
	g.pix[g.index(row, col)] = c
}

func (g *Grid) index(row, col int) int {
	if !g.In(row, col) {
		panic(errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d", row, col, g.height, g.width))
	}
	return row*g.width + col
}

// Row returns row r. The slice aliases the grid's storage.
func (g *Grid) Row(r int) []Color {
	g.index(r, 0)
	return g.pix[r*g.width : (r+1)*g.width : (r+1)*g.width]
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Color {
	rows := make([][]Color, g.height)
	for r := range rows {
		rows[r] = append([]Color(nil), g.pix[r*g.width:(r+1)*g.width]...)
	}
	return rows
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.height, g.width)
	copy(c.pix, g.pix)
	return c
}

// Equal reports whether o has the same dimensions and the same color in every cell.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, for test failure output.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.pix[r*g.width+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// mustBeWellFormed panics when g cannot be processed. Engine operations call it
// before touching any cell so a bad grid is never partially transformed.
func mustBeWellFormed(g *Grid) {
	if g == nil {
		panic(errors.Wrap(ErrMalformedGrid, "nil grid"))
	}
	if g.height < 1 || g.width < 1 || len(g.pix) != g.height*g.width {
		panic(errors.Wrapf(ErrMalformedGrid, "%dx%d with %d cells", g.height, g.width, len(g.pix)))
	}
}
