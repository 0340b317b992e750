package cvmat

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-pixelgrid/images"
)

func TestRoundTrip(t *testing.T) {
	g := images.MustGridFromRows([][]images.Color{
		{images.Red, images.Green, images.Blue},
		{{R: 1, G: 2, B: 3}, images.White, images.Black},
	})

	mat := FromGrid(g)
	defer mat.Close()

	require.Equal(t, 2, mat.Rows())
	require.Equal(t, 3, mat.Cols())
	// OpenCV stores BGR: blue first.
	assert.Equal(t, uint8(3), mat.GetUCharAt(1, 0))
	assert.Equal(t, uint8(1), mat.GetUCharAt(1, 2))

	back, err := ToGrid(mat)
	require.NoError(t, err)
	assert.True(t, back.Equal(g))
}

// gocv's own rotation must agree with the grid engine.
func TestRotationMatchesOpenCV(t *testing.T) {
	g := images.MustGridFromRows([][]images.Color{
		{{R: 1}, {R: 2}, {R: 3}},
		{{R: 4}, {R: 5}, {R: 6}},
	})
	mat := FromGrid(g)
	defer mat.Close()

	for _, tc := range []struct {
		name string
		code gocv.RotateFlag
		want *images.Grid
	}{
		{"ccw", gocv.Rotate90CounterClockwise, images.RotateCCW(g)},
		{"cw", gocv.Rotate90Clockwise, images.RotateCW(g)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dst := gocv.NewMat()
			defer dst.Close()
			gocv.Rotate(mat, &dst, tc.code)

			got, err := ToGrid(dst)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got\n%v\nwant\n%v", got, tc.want)
		})
	}
}

func TestToGridRejects(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	_, err := ToGrid(empty)
	assert.True(t, errors.Is(err, ErrUnsupportedMat))

	gray := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC1)
	defer gray.Close()
	_, err = ToGrid(gray)
	assert.True(t, errors.Is(err, ErrUnsupportedMat))
}

func TestComputeMatChecksum(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	sum, err := ComputeMatChecksum(empty)
	require.NoError(t, err)
	assert.Equal(t, "empty", sum)

	g, err := images.NewGridFilled(3, 3, images.Red)
	require.NoError(t, err)
	a, b := FromGrid(g), FromGrid(g.Clone())
	defer a.Close()
	defer b.Close()
	sumA, err := ComputeMatChecksum(a)
	require.NoError(t, err)
	sumB, err := ComputeMatChecksum(b)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)

	wide, err := images.NewGridFilled(1, 9, images.Red)
	require.NoError(t, err)
	c := FromGrid(wide)
	defer c.Close()
	sumC, err := ComputeMatChecksum(c)
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumC, "same bytes in another shape")
}

// numberedGrid gives every cell a distinct red channel.
func numberedGrid(t *testing.T, h, w int) *images.Grid {
	t.Helper()
	g, err := images.NewGrid(h, w)
	require.NoError(t, err)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			g.Set(r, c, images.Color{R: uint8(r*w + c + 1), G: 7, B: 9})
		}
	}
	return g
}

func TestRegionViews(t *testing.T) {
	g := numberedGrid(t, 4, 5)
	mat := FromGrid(g)
	defer mat.Close()

	view := mat.Region(image.Rect(1, 1, 3, 4))
	defer view.Close()
	other := mat.Region(image.Rect(0, 0, 2, 3))
	defer other.Close()
	require.False(t, view.IsContinuous())

	want := images.MustGridFromRows([][]images.Color{
		{g.At(1, 1), g.At(1, 2)},
		{g.At(2, 1), g.At(2, 2)},
		{g.At(3, 1), g.At(3, 2)},
	})
	got, err := ToGrid(view)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got\n%v\nwant\n%v", got, want)

	packed := FromGrid(want)
	defer packed.Close()
	sumView, err := ComputeMatChecksum(view)
	require.NoError(t, err)
	sumPacked, err := ComputeMatChecksum(packed)
	require.NoError(t, err)
	sumOther, err := ComputeMatChecksum(other)
	require.NoError(t, err)

	assert.Equal(t, sumPacked, sumView, "a view hashes like its packed copy")
	assert.NotEqual(t, sumView, sumOther, "views over different cells differ")
}
