package linalg

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrSingular is returned by Inverse when the determinant is (close to) zero.
var ErrSingular = errors.New("linalg: singular matrix")

// Matrix2x2 is a 2x2 matrix stored in row-major order:
//
//	| A0  A1 |
//	| A2  A3 |
//
// Applied to a vector (row, col) it yields
//
//	row' = A0*row + A1*col
//	col' = A2*row + A3*col
type Matrix2x2 struct {
	A0, A1 float64
	A2, A3 float64
}

// Mat builds a matrix from its row-major components a00, a01, a10, a11.
func Mat(a00, a01, a10, a11 float64) Matrix2x2 {
	return Matrix2x2{A0: a00, A1: a01, A2: a10, A3: a11}
}

// Identity returns the 2x2 identity matrix.
func Identity() Matrix2x2 {
	return Matrix2x2{A0: 1, A1: 0, A2: 0, A3: 1}
}

// RotationMatrix returns [[cos θ, -sin θ], [sin θ, cos θ]] for θ given in degrees.
//
// On (row, col) axes, RotationMatrix(90) takes (1, 0) to (0, 1) and (0, 1) to
// (-1, 0). With rows growing downwards this is a counterclockwise quarter turn on
// screen, the same sense as images.RotateCCW.
//
// Arguments:
//   - angleDegrees: The rotation angle in degrees.
//
// Returns:
//   - The rotation matrix.
func RotationMatrix(angleDegrees float64) Matrix2x2 {
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix2x2{
		A0: cos, A1: -sin,
		A2: sin, A3: cos,
	}
}

// Scale multiplies every component by s.
func (m Matrix2x2) Scale(s float64) Matrix2x2 {
	return Matrix2x2{A0: m.A0 * s, A1: m.A1 * s, A2: m.A2 * s, A3: m.A3 * s}
}

// Mul returns the matrix product m * o, result[i][j] = Σk m[i][k]*o[k][j].
func (m Matrix2x2) Mul(o Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		A0: m.A0*o.A0 + m.A1*o.A2,
		A1: m.A0*o.A1 + m.A1*o.A3,
		A2: m.A2*o.A0 + m.A3*o.A2,
		A3: m.A2*o.A1 + m.A3*o.A3,
	}
}

// Apply returns the matrix-vector product m * v.
func (m Matrix2x2) Apply(v Vector2) Vector2 {
	return Vector2{
		Row: m.A0*v.Row + m.A1*v.Col,
		Col: m.A2*v.Row + m.A3*v.Col,
	}
}

// Equal reports whether every component differs by less than Epsilon.
func (m Matrix2x2) Equal(o Matrix2x2) bool {
	return math.Abs(m.A0-o.A0) < Epsilon &&
		math.Abs(m.A1-o.A1) < Epsilon &&
		math.Abs(m.A2-o.A2) < Epsilon &&
		math.Abs(m.A3-o.A3) < Epsilon
}

// String formats the matrix as two bracketed rows.
func (m Matrix2x2) String() string {
	return fmt.Sprintf("[[%g, %g],\n [%g, %g]]", m.A0, m.A1, m.A2, m.A3)
}

// ToMat2 converts m to mgl64's column-major Mat2.
func (m Matrix2x2) ToMat2() mgl64.Mat2 {
	return mgl64.Mat2{m.A0, m.A2, m.A1, m.A3}
}

// FromMat2 converts a column-major mgl64.Mat2 to a Matrix2x2.
func FromMat2(c mgl64.Mat2) Matrix2x2 {
	return Matrix2x2{A0: c[0], A1: c[2], A2: c[1], A3: c[3]}
}

// Det returns the determinant.
func (m Matrix2x2) Det() float64 {
	return m.ToMat2().Det()
}

// Transpose returns the transposed matrix.
func (m Matrix2x2) Transpose() Matrix2x2 {
	return FromMat2(m.ToMat2().Transpose())
}

// Inverse returns the inverse of m, or ErrSingular when |det| < Epsilon.
func (m Matrix2x2) Inverse() (Matrix2x2, error) {
	if math.Abs(m.Det()) < Epsilon {
		return Matrix2x2{}, errors.Wrapf(ErrSingular, "det=%g", m.Det())
	}
	return FromMat2(m.ToMat2().Inv()), nil
}

// Mul returns m1 * m2.
func Mul(m1, m2 Matrix2x2) Matrix2x2 { return m1.Mul(m2) }

// Apply returns m * v.
func Apply(m Matrix2x2, v Vector2) Vector2 { return m.Apply(v) }

// MulVector is Apply with the operands in (vector, matrix) order.
func MulVector(v Vector2, m Matrix2x2) Vector2 { return m.Apply(v) }
