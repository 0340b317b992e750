package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeSkipsNearWhite(t *testing.T) {
	dst, err := NewGrid(4, 4)
	require.NoError(t, err)
	src := MustGridFromRows([][]Color{
		{White, White},
		{White, Red},
	})

	written := Composite(dst, src, 1, 1)
	assert.Equal(t, 1, written)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := Black
			if r == 2 && c == 2 {
				want = Red
			}
			assert.Equal(t, want, dst.At(r, c), "cell (%d,%d)", r, c)
		}
	}
	assert.Equal(t, White, src.At(0, 0), "source must be untouched")
}

func TestCompositeThreshold(t *testing.T) {
	dst, err := NewGrid(1, 3)
	require.NoError(t, err)
	src := MustGridFromRows([][]Color{{
		{R: 250, G: 250, B: 250}, // transparent
		{R: 249, G: 250, B: 250}, // one channel below the threshold: copied
		{R: 255, G: 255, B: 10},  // copied
	}})

	assert.Equal(t, 2, Composite(dst, src, 0, 0))
	assert.Equal(t, []Color{Black, {R: 249, G: 250, B: 250}, {R: 255, G: 255, B: 10}}, dst.Row(0))
}

func TestCompositeClipping(t *testing.T) {
	src := MustGridFromRows([][]Color{
		{Red, Green, Blue},
		{Green, Blue, Red},
		{Blue, Red, Green},
	})

	tests := []struct {
		name       string
		row0, col0 int
		want       [][]Color
		written    int
	}{
		{
			name: "bottom right overhang",
			row0: 1, col0: 1,
			want: [][]Color{
				{Black, Black},
				{Black, Red},
			},
			written: 1,
		},
		{
			name: "negative offsets clip the top left",
			row0: -2, col0: -1,
			want: [][]Color{
				{Red, Green},
				{Black, Black},
			},
			written: 2,
		},
		{
			name: "entirely outside",
			row0: 5, col0: -9,
			want: [][]Color{
				{Black, Black},
				{Black, Black},
			},
			written: 0,
		},
		{
			name: "covers the whole destination",
			row0: -1, col0: -1,
			want: [][]Color{
				{Blue, Red},
				{Red, Green},
			},
			written: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := NewGrid(2, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.written, Composite(dst, src, tt.row0, tt.col0))
			assert.Equal(t, tt.want, dst.Rows())
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}
	assert.Equal(t, Rect{X1: 5, Y1: 5, X2: 10, Y2: 10}, a.Intersect(Rect{X1: 5, Y1: 5, X2: 15, Y2: 15}))
	assert.True(t, a.Intersect(Rect{X1: 10, Y1: 0, X2: 20, Y2: 10}).Empty(), "touching edges do not overlap")
	assert.Equal(t, Rect{X1: 2, Y1: 3, X2: 4, Y2: 6}, Rect{X1: 0, Y1: 0, X2: 2, Y2: 3}.Add(2, 3))
}

func TestCompositeOntoItself(t *testing.T) {
	g := MustGridFromRows([][]Color{
		{Red, Green, Blue},
		{Green, Blue, Red},
		{Blue, Red, Green},
	})

	assert.Equal(t, 4, Composite(g, g, 1, 1))
	assert.Equal(t, [][]Color{
		{Red, Green, Blue},
		{Green, Red, Green},
		{Blue, Green, Blue},
	}, g.Rows(), "cells are copied from the grid as it was before the call")
}
