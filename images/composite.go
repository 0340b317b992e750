package images

// Composite inserts src into dst with src's top-left cell at (row0, col0).
//
// Near-white source cells (every channel >= NearWhiteThreshold) are treated as
// transparent background and leave dst untouched. Source cells that would land
// outside dst, above/left of it as well as below/right of it, are clipped
// silently; this is clipping policy, not an error. dst is modified in place and
// src is only read; when both are the same grid, src is read from a snapshot
// taken before any cell is written.
//
// Arguments:
//   - dst: The destination grid.
//   - src: The grid to insert.
//   - row0, col0: The destination cell receiving src's (0, 0). May be negative.
//
// Returns:
//   - int: The number of destination cells written.
//
// Example:
//
//	black 4x4, src [[white, white], [white, red]] at (1, 1)
//	  -> only dst(2, 2) changes, to red
func Composite(dst, src *Grid, row0, col0 int) int {
	mustBeWellFormed(dst)
	mustBeWellFormed(src)

	// The window of dst cells that src can reach, in dst coordinates.
	window := src.Bounds().Add(col0, row0).Intersect(dst.Bounds())
	if window.Empty() {
		return 0
	}
	if dst == src {
		src = src.Clone()
	}

	written := 0
	for r := window.Y1; r < window.Y2; r++ {
		srcRow := src.pix[(r-row0)*src.width : (r-row0+1)*src.width]
		dstRow := dst.pix[r*dst.width : (r+1)*dst.width]
		for c := window.X1; c < window.X2; c++ {
			px := srcRow[c-col0]
			if px.IsNearWhite() {
				continue
			}
			dstRow[c] = px
			written++
		}
	}
	return written
}
