package text

import (
	"math"
	"testing"
)

func TestMetrics_Measure(t *testing.T) {
	m := DefaultMetrics()
	tests := []struct {
		name       string
		line       string
		fontSize   float64
		wantWidth  float64
		wantHeight float64
	}{
		{"empty", "", 24, 0, 28.8},
		{"ascii", "hi", 24, 28.8, 28.8},
		{"rune counted not bytes", "é", 10, 6, 12},
		{"scales with font size", "abcd", 100, 240, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := m.Measure(tt.line, tt.fontSize)
			if math.Abs(w-tt.wantWidth) > 1e-9 || math.Abs(h-tt.wantHeight) > 1e-9 {
				t.Errorf("Measure(%q, %v) = (%v, %v), want (%v, %v)",
					tt.line, tt.fontSize, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestMetrics_ZeroValueFallsBack(t *testing.T) {
	var m Metrics // zero ratios fall back to the defaults
	w, h := m.Measure("x", 10)
	if math.Abs(w-6) > 1e-9 || math.Abs(h-12) > 1e-9 {
		t.Errorf("zero-value Measure = (%v, %v), want (6, 12)", w, h)
	}
}
