package annotate

// CoordinateMapper converts between screen-pixel coordinates and the render
// target's normalized device coordinate space. It is stateless: every
// conversion reads the viewport size from the provider, so a resize is
// picked up immediately.
type CoordinateMapper struct {
	viewport ViewportProvider
}

// NewCoordinateMapper creates a mapper reading sizes from vp.
func NewCoordinateMapper(vp ViewportProvider) *CoordinateMapper {
	return &CoordinateMapper{viewport: vp}
}

// ScreenToNDC converts a screen-pixel point to normalized device
// coordinates: x in [-1, 1] left to right, y in [-1, 1] bottom to top.
// A degenerate viewport maps everything to the origin.
func (m *CoordinateMapper) ScreenToNDC(p Point) Point {
	w, h := m.viewport.ViewportSize()
	if w <= 0 || h <= 0 {
		return Point{}
	}
	return Point{
		X: (p.X/w)*2 - 1,
		Y: 1 - (p.Y/h)*2,
	}
}

// NDCToScreen is the inverse of ScreenToNDC.
func (m *CoordinateMapper) NDCToScreen(p Point) Point {
	w, h := m.viewport.ViewportSize()
	return Point{
		X: (p.X + 1) * 0.5 * w,
		Y: (1 - p.Y) * 0.5 * h,
	}
}

// SegmentToNDC converts both endpoints of a segment.
func (m *CoordinateMapper) SegmentToNDC(s Segment) Segment {
	s.A = m.ScreenToNDC(s.A)
	s.B = m.ScreenToNDC(s.B)
	return s
}

// ClampToViewport clamps a rectangle to the current viewport bounds.
func (m *CoordinateMapper) ClampToViewport(r Rect) Rect {
	w, h := m.viewport.ViewportSize()
	r.Min.X = max(r.Min.X, 0)
	r.Min.Y = max(r.Min.Y, 0)
	r.Max.X = min(r.Max.X, w)
	r.Max.Y = min(r.Max.Y, h)
	return r
}
