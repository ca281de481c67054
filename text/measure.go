// Package text provides the text-measurement boundary of the annotation
// engine. The engine only needs the size of a line of text at a font size,
// for hit-testing and handle placement; glyph rasterization stays with the
// host's text stack.
package text

import "unicode/utf8"

// Measurer measures a single line of content at a font size in pixels.
// Implementations must be cheap enough to call on every hit-test.
type Measurer interface {
	Measure(line string, fontSize float64) (width, height float64)
}

// lineHeightRatio is the conventional line height relative to font size.
const lineHeightRatio = 1.2

// Metrics is a font-independent fallback Measurer that estimates advance
// width from a fixed per-rune ratio. It is used when no font is loaded;
// boxes are approximate but stable, which is all hit-testing needs.
type Metrics struct {
	// AdvanceRatio is the width of one rune as a fraction of font size.
	// Default: 0.6
	AdvanceRatio float64

	// LineHeight is the line height as a fraction of font size.
	// Default: 1.2
	LineHeight float64
}

// DefaultMetrics returns the stock estimate ratios.
func DefaultMetrics() Metrics {
	return Metrics{AdvanceRatio: 0.6, LineHeight: lineHeightRatio}
}

// Measure implements Measurer.
func (m Metrics) Measure(line string, fontSize float64) (width, height float64) {
	ar := m.AdvanceRatio
	if ar <= 0 {
		ar = 0.6
	}
	lh := m.LineHeight
	if lh <= 0 {
		lh = lineHeightRatio
	}
	n := utf8.RuneCountInString(line)
	return float64(n) * fontSize * ar, fontSize * lh
}
