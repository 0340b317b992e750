package images

// Rect is a lightweight cell rectangle in grid coordinates.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle). X runs along columns, Y along rows.
	X1, Y1, X2, Y2 int
}

// Bounds returns the rectangle covering every cell of g.
func (g *Grid) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: g.width, Y2: g.height}
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.X2 - r.X1 }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Y2 - r.Y1 }

// Add translates r by (dx, dy).
func (r Rect) Add(dx, dy int) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Intersect returns the largest rectangle contained in both r and o. The
// top-left corner is the maximum of both top-left corners and the bottom-right
// corner the minimum of both bottom-right corners. Non-overlapping inputs give
// the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
		X2: min(r.X2, o.X2),
		Y2: min(r.Y2, o.Y2),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}
