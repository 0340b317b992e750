// Package matrix2d holds rectangular numeric matrices and their quarter-turn
// rotations by direct index remapping. Nothing here knows about colors; the
// package exists so that the pixel rotation mappings can be checked against a
// plain numeric implementation.
package matrix2d

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedMatrix is returned for zero-sized or ragged input.
	ErrMalformedMatrix = errors.New("matrix2d: malformed matrix")
	// ErrDimensionMismatch is returned by Copy when shapes differ.
	ErrDimensionMismatch = errors.New("matrix2d: dimension mismatch")
	// ErrOutOfRange is the panic value of At and Set outside the matrix.
	ErrOutOfRange = errors.New("matrix2d: index out of range")
)

// Number is the set of element types a Matrix may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is an N×M row-major grid of numbers.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
}

// New returns a zero-filled rows×cols matrix.
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrMalformedMatrix, "dimensions %dx%d", rows, cols)
	}
	return alloc[T](rows, cols), nil
}

// FromRows copies a rectangular [][]T into a new matrix.
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrMalformedMatrix, "empty input")
	}
	m := alloc[T](len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, errors.Wrapf(ErrMalformedMatrix, "row %d has %d columns, want %d", i, len(row), m.cols)
		}
		copy(m.data[i*m.cols:], row)
	}
	return m, nil
}

// MustFromRows is FromRows that panics on error.
func MustFromRows[T Number](rows [][]T) *Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func alloc[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns N.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns M.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns element (i, j). It panics with ErrOutOfRange outside the matrix.
func (m *Matrix[T]) At(i, j int) T { return m.data[m.index(i, j)] }

// Set stores v at (i, j). It panics with ErrOutOfRange outside the matrix.
func (m *Matrix[T]) Set(i, j int, v T) { m.data[m.index(i, j)] = v }

func (m *Matrix[T]) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// ToRows returns a copy of the matrix as [][]T.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = append([]T(nil), m.data[i*m.cols:(i+1)*m.cols]...)
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := alloc[T](m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether o has the same shape and elements. Two nil matrices
// are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Copy writes every element of src into dst. Both must have the same shape.
func Copy[T Number](dst, src *Matrix[T]) error {
	if dst.rows != src.rows || dst.cols != src.cols {
		return errors.Wrapf(ErrDimensionMismatch, "copy %dx%d into %dx%d", src.rows, src.cols, dst.rows, dst.cols)
	}
	copy(dst.data, src.data)
	return nil
}

// Format renders m one row per line, each element right-aligned in a
// three-character field followed by a space.
func Format[T Number](m *Matrix[T]) string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%3v ", m.data[i*m.cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer using Format.
func (m *Matrix[T]) String() string { return Format(m) }
