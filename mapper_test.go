package annotate

import (
	"math"
	"testing"
)

func TestCoordinateMapper_ScreenToNDC(t *testing.T) {
	m := NewCoordinateMapper(testViewport{800, 600})
	tests := []struct {
		name   string
		p      Point
		expect Point
	}{
		{"top-left", Pt(0, 0), Pt(-1, 1)},
		{"bottom-right", Pt(800, 600), Pt(1, -1)},
		{"center", Pt(400, 300), Pt(0, 0)},
		{"quarter", Pt(200, 150), Pt(-0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ScreenToNDC(tt.p)
			if math.Abs(got.X-tt.expect.X) > 1e-10 || math.Abs(got.Y-tt.expect.Y) > 1e-10 {
				t.Errorf("ScreenToNDC(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestCoordinateMapper_RoundTrip(t *testing.T) {
	m := NewCoordinateMapper(testViewport{1920, 1080})
	points := []Point{Pt(0, 0), Pt(123.5, 456.25), Pt(1920, 1080)}
	for _, p := range points {
		back := m.NDCToScreen(m.ScreenToNDC(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip %v -> %v", p, back)
		}
	}
}

func TestCoordinateMapper_DegenerateViewport(t *testing.T) {
	m := NewCoordinateMapper(testViewport{0, 0})
	if got := m.ScreenToNDC(Pt(100, 100)); got != Pt(0, 0) {
		t.Errorf("degenerate viewport mapped to %v, want origin", got)
	}
}

func TestCoordinateMapper_TracksViewportResize(t *testing.T) {
	vp := &mutableViewport{w: 800, h: 600}
	m := NewCoordinateMapper(vp)
	before := m.ScreenToNDC(Pt(400, 300))
	vp.w, vp.h = 1600, 1200
	after := m.ScreenToNDC(Pt(400, 300))
	if before != Pt(0, 0) {
		t.Errorf("before resize = %v", before)
	}
	if after != Pt(-0.5, 0.5) {
		t.Errorf("after resize = %v, size not re-read", after)
	}
}

func TestCoordinateMapper_SegmentToNDC(t *testing.T) {
	m := NewCoordinateMapper(testViewport{800, 600})
	s := Segment{A: Pt(0, 0), B: Pt(800, 600), Color: Red, Thickness: 2}
	out := m.SegmentToNDC(s)
	if out.A != Pt(-1, 1) || out.B != Pt(1, -1) {
		t.Errorf("SegmentToNDC = %v-%v", out.A, out.B)
	}
	if out.Color != Red || out.Thickness != 2 {
		t.Error("segment style not preserved")
	}
}

type mutableViewport struct {
	w, h float64
}

func (v *mutableViewport) ViewportSize() (float64, float64) { return v.w, v.h }
