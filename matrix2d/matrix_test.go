package matrix2d

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix[int] {
	m, err := New[int](rows, cols)
	if err != nil {
		panic(err)
	}
	for i := range m.data {
		m.data[i] = rng.Intn(1000) - 500
	}
	return m
}

func TestRotateScenarios(t *testing.T) {
	a := MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	ccw := RotateCCW(a)
	assert.Equal(t, [][]int{{3, 6}, {2, 5}, {1, 4}}, ccw.ToRows())

	cw := RotateCW(a)
	assert.Equal(t, [][]int{{4, 1}, {5, 2}, {6, 3}}, cw.ToRows())

	assert.Equal(t, [][]int{{6, 5, 4}, {3, 2, 1}}, Rotate180(a).ToRows())
}

func TestRotateSquare(t *testing.T) {
	a := MustFromRows([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	want := [][]int{
		{4, 8, 12, 16},
		{3, 7, 11, 15},
		{2, 6, 10, 14},
		{1, 5, 9, 13},
	}
	assert.Equal(t, want, RotateCCW(a).ToRows())
}

func TestRotateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 7; n++ {
		for m := 1; m <= 7; m++ {
			a := randomMatrix(rng, n, m)

			once := RotateCCW(a)
			require.Equal(t, m, once.Rows(), "%dx%d", n, m)
			require.Equal(t, n, once.Cols(), "%dx%d", n, m)

			for i := 0; i < n; i++ {
				for j := 0; j < m; j++ {
					require.Equal(t, a.At(i, j), once.At(m-1-j, i))
				}
			}

			four := RotateCCW(RotateCCW(RotateCCW(once)))
			assert.True(t, four.Equal(a), "four quarter turns must restore %dx%d", n, m)
			assert.True(t, RotateCW(once).Equal(a), "CW must undo CCW for %dx%d", n, m)
			assert.True(t, RotateCCW(RotateCW(a)).Equal(a), "CCW must undo CW for %dx%d", n, m)
			assert.True(t, RotateCCW(once).Equal(Rotate180(a)), "two CCW turns must equal 180 for %dx%d", n, m)
		}
	}
}

func TestRotateFloat(t *testing.T) {
	a := MustFromRows([][]float64{{0.5, -1.25}})
	assert.Equal(t, [][]float64{{-1.25}, {0.5}}, RotateCCW(a).ToRows())
}

func TestFromRowsMalformed(t *testing.T) {
	_, err := FromRows([][]int{})
	assert.True(t, errors.Is(err, ErrMalformedMatrix))

	_, err = FromRows([][]int{{}})
	assert.True(t, errors.Is(err, ErrMalformedMatrix))

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.True(t, errors.Is(err, ErrMalformedMatrix))

	_, err = New[float64](0, 3)
	assert.True(t, errors.Is(err, ErrMalformedMatrix))
}

func TestCopy(t *testing.T) {
	src := MustFromRows([][]int{{1, 2}, {3, 4}})
	dst, err := New[int](2, 2)
	require.NoError(t, err)

	require.NoError(t, Copy(dst, src))
	assert.True(t, dst.Equal(src))

	dst.Set(0, 0, 99)
	assert.Equal(t, 1, src.At(0, 0), "Copy must not alias")

	wrong, err := New[int](2, 3)
	require.NoError(t, err)
	assert.True(t, errors.Is(Copy(wrong, src), ErrDimensionMismatch))
}

func TestFormat(t *testing.T) {
	a := MustFromRows([][]int{{1, 2, 3}, {4, 5, 16}})
	assert.Equal(t, "  1   2   3 \n  4   5  16 \n", Format(a))
	assert.Equal(t, Format(a), a.String())
}

// recovered runs f and returns the error it panicked with.
func recovered(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestAtPanicsOutOfRange(t *testing.T) {
	a := MustFromRows([][]int{{1, 2}})
	for name, f := range map[string]func(){
		"row past end":    func() { a.At(1, 0) },
		"column past end": func() { a.At(0, 2) },
		"negative row":    func() { a.Set(-1, 0, 3) },
	} {
		err := recovered(f)
		assert.True(t, errors.Is(err, ErrOutOfRange), "%s: %v", name, err)
	}
}

func TestEqualNil(t *testing.T) {
	var a, b *Matrix[int]
	m := MustFromRows([][]int{{1}})
	assert.True(t, a.Equal(b))
	assert.False(t, m.Equal(nil))
	assert.False(t, a.Equal(m))
	assert.False(t, m.Equal(MustFromRows([][]int{{1, 1}})))
}
