package annotate

// Rect is an axis-aligned rectangle in screen-pixel units.
// A Rect is normalized when Min.X <= Max.X and Min.Y <= Max.Y.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the normalized rectangle spanned by two
// arbitrary corner points.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) * 0.5,
		Y: (r.Min.Y + r.Max.Y) * 0.5,
	}
}

// Contains returns true if p is inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Inset returns the rectangle shrunk by v on every side.
// A negative v grows the rectangle.
func (r Rect) Inset(v float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + v, Y: r.Min.Y + v},
		Max: Point{X: r.Max.X - v, Y: r.Max.Y - v},
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Point{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}
