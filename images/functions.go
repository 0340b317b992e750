// Package images - pixel grid transforms: channel remapping, negative,
// grayscale, rotations and compositing.
package images

// mapColors replaces every cell of g with fn(cell), in place.
func mapColors(g *Grid, o options, fn func(Color) Color) {
	mustBeWellFormed(g)
	forEachRow(g.height, o, func(r int) {
		row := g.pix[r*g.width : (r+1)*g.width]
		for c := range row {
			row[c] = fn(row[c])
		}
	})
}

// ChannelRemapBRG reorders the channels of every cell from (R, G, B) to
// (B, R, G), in place. Applying it three times restores the original grid.
//
// Arguments:
//   - g: The grid to modify.
//   - opts: Optional engine options (see WithParallel).
func ChannelRemapBRG(g *Grid, opts ...Option) {
	mapColors(g, collect(opts), func(c Color) Color {
		return Color{R: c.B, G: c.R, B: c.G}
	})
}

// Negative replaces every channel value v with 255-v, in place. It is its own
// inverse.
func Negative(g *Grid, opts ...Option) {
	mapColors(g, collect(opts), func(c Color) Color {
		return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

// Grayscale replaces every cell with (avg, avg, avg) where avg is the truncated
// integer mean of its three channels. Applying it twice equals applying it once.
func Grayscale(g *Grid, opts ...Option) {
	mapColors(g, collect(opts), func(c Color) Color {
		avg := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
		return Color{R: avg, G: avg, B: avg}
	})
}
