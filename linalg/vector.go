// Package linalg - 2D vector and 2x2 matrix primitives used to derive pixel
// coordinate rotations.
package linalg

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the absolute tolerance used by Equal on vectors and matrices.
const Epsilon = 1e-4

// Vector2 is a two component vector in (row, col) space.
type Vector2 struct {
	// Row is the vertical component (grows downwards in pixel space).
	Row float64
	// Col is the horizontal component (grows rightwards in pixel space).
	Col float64
}

// Vec returns the vector (row, col).
func Vec(row, col float64) Vector2 {
	return Vector2{Row: row, Col: col}
}

// Add returns the componentwise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{Row: v.Row + o.Row, Col: v.Col + o.Col}
}

// Sub returns the componentwise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{Row: v.Row - o.Row, Col: v.Col - o.Col}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{Row: v.Row * s, Col: v.Col * s}
}

// Dot returns v.Row*o.Row + v.Col*o.Col.
func (v Vector2) Dot(o Vector2) float64 {
	return v.Row*o.Row + v.Col*o.Col
}

// Equal reports whether both components differ by less than Epsilon.
func (v Vector2) Equal(o Vector2) bool {
	return math.Abs(v.Row-o.Row) < Epsilon && math.Abs(v.Col-o.Col) < Epsilon
}

// String formats the vector as "(row, col)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.Row, v.Col)
}

// ToVec2 converts v to an mgl64 vector laid out as {Row, Col}.
func (v Vector2) ToVec2() mgl64.Vec2 {
	return mgl64.Vec2{v.Row, v.Col}
}

// FromVec2 is the inverse of Vector2.ToVec2.
func FromVec2(m mgl64.Vec2) Vector2 {
	return Vector2{Row: m[0], Col: m[1]}
}

// Add returns v1 + v2.
func Add(v1, v2 Vector2) Vector2 { return v1.Add(v2) }

// Sub returns v1 - v2.
func Sub(v1, v2 Vector2) Vector2 { return v1.Sub(v2) }

// Dot returns the dot product of v1 and v2.
func Dot(v1, v2 Vector2) float64 { return v1.Dot(v2) }
