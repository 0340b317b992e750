package images

// Rotate180 turns g half way round in place: the cell at (row, col) moves to
// (H-1-row, W-1-col). Dimensions are unchanged.
func Rotate180(g *Grid, opts ...Option) {
	mustBeWellFormed(g)
	h, w := g.height, g.width
	scratch := make([]Color, len(g.pix))
	copy(scratch, g.pix)

	forEachRow(h, collect(opts), func(r int) {
		src := scratch[r*w : (r+1)*w]
		dst := g.pix[(h-1-r)*w : (h-r)*w]
		for c := range src {
			dst[w-1-c] = src[c]
		}
	})
}

// RotateCCW returns a new W×H grid holding g turned a quarter turn
// counterclockwise: the cell at (row, col) lands on (W-1-col, row). Read row by
// row, the result lists g's columns from last to first, each top to bottom.
//
// g is not modified.
//
// Arguments:
//   - g: The source grid.
//   - opts: Optional engine options (see WithParallel).
//
// Returns:
//   - *Grid: The rotated grid with height and width swapped.
//
// Example:
//
//	1 2 3    3 6
//	4 5 6 -> 2 5
//	         1 4
func RotateCCW(g *Grid, opts ...Option) *Grid {
	mustBeWellFormed(g)
	h, w := g.height, g.width
	out := newGrid(w, h)

	// Each source row r fills destination column r, so chunks never share a cell.
	forEachRow(h, collect(opts), func(r int) {
		src := g.pix[r*w : (r+1)*w]
		for c, px := range src {
			out.pix[(w-1-c)*h+r] = px
		}
	})
	return out
}

// RotateCW returns a new W×H grid holding g turned a quarter turn clockwise:
// the cell at (row, col) lands on (col, H-1-row). It is the exact inverse of
// RotateCCW.
//
// Example:
//
//	1 2 3    4 1
//	4 5 6 -> 5 2
//	         6 3
func RotateCW(g *Grid, opts ...Option) *Grid {
	mustBeWellFormed(g)
	h, w := g.height, g.width
	out := newGrid(w, h)

	forEachRow(h, collect(opts), func(r int) {
		src := g.pix[r*w : (r+1)*w]
		for c, px := range src {
			out.pix[c*h+(h-1-r)] = px
		}
	})
	return out
}
