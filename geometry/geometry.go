package geometry

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Top, Left     float64
	Width, Height float64
}

// Circle is a disc given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// IsTriangle reports whether a non-degenerate triangle with sides a, b, c exists.
func IsTriangle(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// Overlaps reports whether r and o share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Left+o.Width &&
		r.Left+r.Width > o.Left &&
		r.Top < o.Top+o.Height &&
		r.Top+r.Height > o.Top
}

// Contains reports whether p lies strictly inside c.
func (c Circle) Contains(p Point) bool {
	return math.Hypot(c.Center.X-p.X, c.Center.Y-p.Y) < c.Radius
}
