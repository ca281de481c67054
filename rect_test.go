package annotate

import "testing"

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		expect Rect
	}{
		{"already ordered", Pt(0, 0), Pt(10, 20), Rect{Pt(0, 0), Pt(10, 20)}},
		{"reversed", Pt(10, 20), Pt(0, 0), Rect{Pt(0, 0), Pt(10, 20)}},
		{"mixed axes", Pt(10, 0), Pt(0, 20), Rect{Pt(0, 0), Pt(10, 20)}},
		{"degenerate", Pt(5, 5), Pt(5, 5), Rect{Pt(5, 5), Pt(5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectFromPoints(tt.a, tt.b)
			if got != tt.expect {
				t.Errorf("RectFromPoints(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Pt(10, 10), Pt(20, 30)}
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Pt(15, 20), true},
		{"on min edge", Pt(10, 10), true},
		{"on max edge", Pt(20, 30), true},
		{"left of", Pt(9, 20), false},
		{"below", Pt(15, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestRect_Dimensions(t *testing.T) {
	r := Rect{Pt(10, 20), Pt(40, 60)}
	if r.Width() != 30 {
		t.Errorf("Width() = %v, want 30", r.Width())
	}
	if r.Height() != 40 {
		t.Errorf("Height() = %v, want 40", r.Height())
	}
	if r.Center() != Pt(25, 40) {
		t.Errorf("Center() = %v, want (25, 40)", r.Center())
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{Pt(10, 10), Pt(20, 20)}
	if got := r.Inset(2); got != (Rect{Pt(12, 12), Pt(18, 18)}) {
		t.Errorf("Inset(2) = %v", got)
	}
	// Negative inset grows the rectangle.
	if got := r.Inset(-4); got != (Rect{Pt(6, 6), Pt(24, 24)}) {
		t.Errorf("Inset(-4) = %v", got)
	}
}

func TestRect_Translate(t *testing.T) {
	r := Rect{Pt(0, 0), Pt(10, 10)}
	if got := r.Translate(Pt(5, -3)); got != (Rect{Pt(5, -3), Pt(15, 7)}) {
		t.Errorf("Translate = %v", got)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	if (Rect{Pt(0, 0), Pt(10, 10)}).IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if !(Rect{Pt(5, 5), Pt(5, 10)}).IsEmpty() {
		t.Error("zero-width rect not reported empty")
	}
}
