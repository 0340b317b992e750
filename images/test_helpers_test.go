package images

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomGrid returns an h×w grid of random colors drawn from rng.
func randomGrid(t testing.TB, rng *rand.Rand, h, w int) *Grid {
	t.Helper()
	g, err := NewGrid(h, w)
	require.NoError(t, err)
	for i := range g.pix {
		g.pix[i] = Color{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
	}
	return g
}

// sizes covers odd, even and degenerate one-row / one-column shapes.
var sizes = [][2]int{
	{1, 1}, {1, 2}, {2, 1}, {1, 7}, {7, 1},
	{2, 2}, {2, 3}, {3, 2}, {3, 3}, {4, 4},
	{4, 5}, {5, 4}, {6, 9}, {9, 6}, {16, 11},
}

// numbered returns an h×w grid whose cell (r, c) encodes r*w+c+1 in its
// channels, so any two cells are distinguishable.
func numbered(h, w int) *Grid {
	g := newGrid(h, w)
	for i := range g.pix {
		g.pix[i] = encode(i + 1)
	}
	return g
}

func encode(n int) Color {
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}
}

func decode(c Color) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}
