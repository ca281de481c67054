package annotate

import "math"

// Segment is a render-ready line segment in screen-pixel coordinates.
// The renderer consumes flat segment lists; it never sees elements.
type Segment struct {
	A, B      Point
	Color     RGBA
	Thickness float64
}

// Tessellation constants.
const (
	// EllipseSegments is the polygon resolution used to approximate an
	// ellipse boundary.
	EllipseSegments = 32

	// Arrowhead geometry, in pixels along and across the shaft direction.
	arrowheadLength = 15.0
	arrowheadWidth  = 8.0
)

// Tessellate converts an element into its line-segment representation.
// Text produces no segments: glyph geometry is owned by the host's text
// stack, the engine only tracks the text box.
func Tessellate(el Element) []Segment {
	switch e := el.(type) {
	case *Rectangle:
		return tessellateRectangle(e)
	case *Ellipse:
		return tessellateEllipse(e)
	case *Arrow:
		return tessellateArrow(e)
	case *Freehand:
		return tessellateFreehand(e)
	case *Text:
		return nil
	default:
		return nil
	}
}

// tessellateRectangle emits the four edges of the rectangle.
func tessellateRectangle(r *Rectangle) []Segment {
	b := r.Bounds()
	tl := b.Min
	tr := Pt(b.Max.X, b.Min.Y)
	br := b.Max
	bl := Pt(b.Min.X, b.Max.Y)
	return []Segment{
		{A: tl, B: tr, Color: r.Color, Thickness: r.Thickness},
		{A: tr, B: br, Color: r.Color, Thickness: r.Thickness},
		{A: br, B: bl, Color: r.Color, Thickness: r.Thickness},
		{A: bl, B: tl, Color: r.Color, Thickness: r.Thickness},
	}
}

// tessellateEllipse approximates the boundary with EllipseSegments chords.
func tessellateEllipse(e *Ellipse) []Segment {
	segs := make([]Segment, 0, EllipseSegments)
	step := 2 * math.Pi / EllipseSegments
	prev := Pt(e.Center.X+e.RadiusX, e.Center.Y)
	for i := 1; i <= EllipseSegments; i++ {
		angle := step * float64(i)
		next := Pt(
			e.Center.X+e.RadiusX*math.Cos(angle),
			e.Center.Y+e.RadiusY*math.Sin(angle),
		)
		segs = append(segs, Segment{A: prev, B: next, Color: e.Color, Thickness: e.Thickness})
		prev = next
	}
	return segs
}

// tessellateArrow emits the shaft plus the two arrowhead strokes derived
// from the unit direction vector. A zero-length arrow has no direction, so
// only the (degenerate) shaft is emitted.
func tessellateArrow(a *Arrow) []Segment {
	segs := []Segment{
		{A: a.Start, B: a.End, Color: a.Color, Thickness: a.Thickness},
	}

	dir := a.End.Sub(a.Start)
	length := dir.Length()
	if length == 0 {
		return segs
	}
	u := dir.Mul(1 / length)
	// Perpendicular of (ux, uy) is (uy, -ux); the head strokes sit
	// arrowheadWidth to either side, arrowheadLength behind the tip.
	back := a.End.Sub(u.Mul(arrowheadLength))
	side := Pt(u.Y, -u.X).Mul(arrowheadWidth)

	segs = append(segs,
		Segment{A: a.End, B: back.Add(side), Color: a.Color, Thickness: a.Thickness},
		Segment{A: a.End, B: back.Sub(side), Color: a.Color, Thickness: a.Thickness},
	)
	return segs
}

// tessellateFreehand emits one segment per consecutive point pair. Every
// sample is rendered; the stroke is never thinned.
func tessellateFreehand(f *Freehand) []Segment {
	if len(f.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(f.Points)-1)
	for i := 0; i+1 < len(f.Points); i++ {
		segs = append(segs, Segment{
			A:         f.Points[i],
			B:         f.Points[i+1],
			Color:     f.Color,
			Thickness: f.Thickness,
		})
	}
	return segs
}
