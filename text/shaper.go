package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Shaper is a Measurer backed by go-text/typesetting's HarfBuzz shaper.
// It produces exact advance widths including kerning and ligatures, so the
// text boxes the engine hit-tests against match what the host renders.
//
// The parsed font.Font is read-only and safe for concurrent use; the
// HarfbuzzShaper instances are not, so they are pooled and each Measure
// call creates a lightweight font.Face around the shared Font.
type Shaper struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; they carry mutable
	// buffers and must not be shared between concurrent calls.
	shaperPool sync.Pool
}

// NewShaper parses TTF/OTF font data and returns a Shaper measuring with
// that font.
func NewShaper(fontData []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return &Shaper{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Measure implements Measurer: the summed glyph advances of the shaped
// line, and the conventional line height for the font size.
func (s *Shaper) Measure(line string, fontSize float64) (width, height float64) {
	height = fontSize * lineHeightRatio
	if line == "" {
		return 0, height
	}

	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(line),
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(fontSize),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return fixedToFloat(advance), height
}

// baseDirection resolves the paragraph base direction of the line using
// the Unicode bidi algorithm.
func baseDirection(line string) di.Direction {
	p := bidi.Paragraph{}
	_, _ = p.SetString(line, bidi.DefaultDirection(bidi.Neutral))
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune. Mixed-script
// lines measure with the dominant first script, which is accurate enough
// for box sizing.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
