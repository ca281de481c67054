package annotate

import (
	"math"
	"testing"

	"github.com/gogpu/annotate/text"
)

// selWithRect returns a selection controller over a store holding one
// committed rectangle (50,50)-(150,120), selected.
func selWithRect(t *testing.T) (*SelectionController, *Rectangle) {
	t.Helper()
	s := newTestStore()
	s.Start(ToolRectangle, Pt(50, 50), testCanvas)
	s.Update(Pt(150, 120))
	s.Commit()

	sel := NewSelectionController(s, text.DefaultMetrics(), DefaultHandleSize)
	if _, ok := sel.Select(0); !ok {
		t.Fatal("Select(0) failed")
	}
	el, _ := s.At(0)
	return sel, el.(*Rectangle)
}

func handleByKind(t *testing.T, sel *SelectionController, k HandleKind) Handle {
	t.Helper()
	for _, h := range sel.Handles() {
		if h.Kind == k {
			return h
		}
	}
	t.Fatalf("no %v handle", k)
	return Handle{}
}

func TestSelection_SelectGeneratesBoxHandles(t *testing.T) {
	sel, _ := selWithRect(t)
	handles := sel.Handles()
	if len(handles) != 8 {
		t.Fatalf("%d handles, want 8", len(handles))
	}

	want := map[HandleKind]Point{
		HandleTopLeft:      Pt(50, 50),
		HandleTopCenter:    Pt(100, 50),
		HandleTopRight:     Pt(150, 50),
		HandleMiddleRight:  Pt(150, 85),
		HandleBottomRight:  Pt(150, 120),
		HandleBottomCenter: Pt(100, 120),
		HandleBottomLeft:   Pt(50, 120),
		HandleMiddleLeft:   Pt(50, 85),
	}
	for _, h := range handles {
		if h.Position != want[h.Kind] {
			t.Errorf("%v at %v, want %v", h.Kind, h.Position, want[h.Kind])
		}
	}
}

func TestSelection_SelectReturnsVariantTool(t *testing.T) {
	s := newTestStore()
	s.Start(ToolArrow, Pt(0, 0), testCanvas)
	s.Update(Pt(50, 50))
	s.Commit()

	sel := NewSelectionController(s, text.DefaultMetrics(), DefaultHandleSize)
	kind, ok := sel.Select(0)
	if !ok || kind != ToolArrow {
		t.Errorf("Select = %v, %v, want arrow", kind, ok)
	}
	if len(sel.Handles()) != 2 {
		t.Errorf("%d arrow handles, want 2", len(sel.Handles()))
	}
}

func TestSelection_SelectOutOfRangeDeselects(t *testing.T) {
	sel, _ := selWithRect(t)
	if _, ok := sel.Select(5); ok {
		t.Error("Select(5) succeeded")
	}
	if _, ok := sel.Selected(); ok {
		t.Error("selection retained after invalid index")
	}
	if sel.Handles() != nil {
		t.Error("handles retained after deselect")
	}
}

func TestSelection_HitTestPerVariant(t *testing.T) {
	m := text.DefaultMetrics()
	s := newTestStore()
	sel := NewSelectionController(s, m, DefaultHandleSize)

	t.Run("rectangle bounding box", func(t *testing.T) {
		r := NewRectangle(Pt(10, 10), Red, 2)
		r.End = Pt(50, 40)
		if !sel.HitTestElement(Pt(30, 25), r) {
			t.Error("inside miss")
		}
		if sel.HitTestElement(Pt(51, 25), r) {
			t.Error("outside hit")
		}
	})

	t.Run("ellipse inequality", func(t *testing.T) {
		e := NewEllipse(Pt(100, 100), Red, 2)
		e.RadiusX, e.RadiusY = 40, 20
		if !sel.HitTestElement(Pt(100, 100), e) {
			t.Error("center miss")
		}
		// Inside bounding box, outside the ellipse.
		if sel.HitTestElement(Pt(135, 118), e) {
			t.Error("bounding box corner hit")
		}
	})

	t.Run("arrow segment distance", func(t *testing.T) {
		a := NewArrow(Pt(0, 0), Red, 2)
		a.End = Pt(100, 0)
		if !sel.HitTestElement(Pt(50, 5), a) {
			t.Error("near shaft miss")
		}
		if sel.HitTestElement(Pt(50, 10), a) {
			t.Error("far from shaft hit")
		}
		// Distance is to the clamped endpoint beyond the segment.
		if sel.HitTestElement(Pt(110, 0), a) {
			t.Error("past the tip hit")
		}
	})

	t.Run("freehand never interactive", func(t *testing.T) {
		f := NewFreehand(Pt(10, 10), Red, 2)
		f.Points = append(f.Points, Pt(20, 20))
		if sel.HitTestElement(Pt(10, 10), f) {
			t.Error("freehand stroke hit")
		}
	})

	t.Run("text padded box", func(t *testing.T) {
		tx := NewText(Pt(100, 100), Red, 24)
		tx.Content = "hi"
		// Metrics box: 2 runes * 24 * 0.6 = 28.8 wide, 28.8 tall, +4 padding.
		if !sel.HitTestElement(Pt(100, 100), tx) {
			t.Error("anchor miss")
		}
		if !sel.HitTestElement(Pt(97, 97), tx) {
			t.Error("padding miss")
		}
		if sel.HitTestElement(Pt(140, 100), tx) {
			t.Error("outside box hit")
		}
	})
}

func TestSelection_ElementAtPrefersTopmost(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 2; i++ {
		s.Start(ToolRectangle, Pt(50, 50), testCanvas)
		s.Update(Pt(150, 120))
		s.Commit()
	}
	sel := NewSelectionController(s, text.DefaultMetrics(), DefaultHandleSize)
	i, ok := sel.ElementAt(Pt(100, 100))
	if !ok || i != 1 {
		t.Errorf("ElementAt = %d, %v, want topmost index 1", i, ok)
	}
}

func TestSelection_CornerRetype(t *testing.T) {
	sel, r := selWithRect(t)
	// Drag the top-left handle past the opposite corner: the handle takes
	// on bottom-right semantics and moves the max corner.
	sel.BeginDrag(handleByKind(t, sel, HandleTopLeft))
	sel.Drag(Pt(200, 200))
	sel.EndDrag()

	if r.Start != Pt(50, 50) || r.End != Pt(200, 200) {
		t.Errorf("rectangle = %v-%v, want (50,50)-(200,200)", r.Start, r.End)
	}
	if r.Start.X > r.End.X || r.Start.Y > r.End.Y {
		t.Error("rectangle not normalized after drag")
	}
	// Handles regenerated at the new geometry.
	if h := handleByKind(t, sel, HandleBottomRight); h.Position != Pt(200, 200) {
		t.Errorf("bottom-right handle at %v after drag", h.Position)
	}
}

func TestSelection_CornerRetypeEachStep(t *testing.T) {
	sel, r := selWithRect(t)
	sel.BeginDrag(handleByKind(t, sel, HandleTopLeft))
	// Still top-left quadrant: moves the min corner.
	sel.Drag(Pt(60, 60))
	if r.Start != Pt(60, 60) {
		t.Fatalf("start = %v, want (60,60)", r.Start)
	}
	// Crossed into the bottom-right quadrant: now moves the max corner.
	sel.Drag(Pt(180, 170))
	sel.EndDrag()
	if r.Start != Pt(60, 60) || r.End != Pt(180, 170) {
		t.Errorf("rectangle = %v-%v", r.Start, r.End)
	}
}

func TestSelection_RectangleMinimumExpansion(t *testing.T) {
	sel, r := selWithRect(t)
	// Drag the right edge to just past the left edge's minimum distance.
	sel.BeginDrag(handleByKind(t, sel, HandleMiddleRight))
	sel.Drag(Pt(52, 85))
	sel.EndDrag()

	if w := r.End.X - r.Start.X; w != DefaultThresholds().MinRectSize {
		t.Errorf("width = %v, want minimum %v", w, DefaultThresholds().MinRectSize)
	}
	if r.Start.X != 50 {
		t.Errorf("opposite edge moved: start.x = %v", r.Start.X)
	}
}

func TestSelection_EllipseDrag(t *testing.T) {
	s := newTestStore()
	s.Start(ToolEllipse, Pt(100, 100), testCanvas)
	s.Update(Pt(140, 130))
	s.Commit()
	sel := NewSelectionController(s, text.DefaultMetrics(), DefaultHandleSize)
	sel.Select(0)
	el, _ := s.At(0)
	e := el.(*Ellipse)

	t.Run("corner adjusts both radii", func(t *testing.T) {
		sel.BeginDrag(handleByKind(t, sel, HandleBottomRight))
		sel.Drag(Pt(160, 150))
		sel.EndDrag()
		if e.RadiusX != 60 || e.RadiusY != 50 {
			t.Errorf("radii = (%v, %v), want (60, 50)", e.RadiusX, e.RadiusY)
		}
	})

	t.Run("edge adjusts one axis", func(t *testing.T) {
		sel.BeginDrag(handleByKind(t, sel, HandleTopCenter))
		sel.Drag(Pt(999, 90))
		sel.EndDrag()
		if e.RadiusX != 60 || e.RadiusY != 10 {
			t.Errorf("radii = (%v, %v), want (60, 10)", e.RadiusX, e.RadiusY)
		}
	})

	t.Run("radius floored through center", func(t *testing.T) {
		sel.BeginDrag(handleByKind(t, sel, HandleBottomRight))
		sel.Drag(e.Center) // degenerate drag onto the center
		sel.EndDrag()
		min := DefaultThresholds().MinRadius
		if e.RadiusX != min || e.RadiusY != min {
			t.Errorf("radii = (%v, %v), want floor %v", e.RadiusX, e.RadiusY, min)
		}
		if e.RadiusX <= 0 || e.RadiusY <= 0 {
			t.Error("radius reached zero")
		}
	})
}

func TestSelection_TextScaling(t *testing.T) {
	s := newTestStore()
	s.Start(ToolText, Pt(100, 100), testCanvas)
	s.InsertRune('h')
	s.InsertRune('i')
	s.Commit()
	m := text.DefaultMetrics()
	sel := NewSelectionController(s, m, DefaultHandleSize)
	sel.Select(0)
	el, _ := s.At(0)
	tx := el.(*Text)

	w, lh := m.Measure("hi", tx.FontSize)
	h := handleByKind(t, sel, HandleBottomRight)

	sel.BeginDrag(h)
	// Move the corner outward by one content diagonal: scale factor 2.
	sel.Drag(h.Position.Add(Pt(w, lh)))
	sel.EndDrag()

	if math.Abs(tx.FontSize-48) > 1e-9 {
		t.Errorf("font size = %v, want 48", tx.FontSize)
	}
	// The opposite content corner is the text position; it stays fixed.
	if math.Abs(tx.Position.X-100) > 1e-9 || math.Abs(tx.Position.Y-100) > 1e-9 {
		t.Errorf("position = %v, want (100,100)", tx.Position)
	}
}

func TestSelection_TextScaleAnchorsContentCorner(t *testing.T) {
	s := newTestStore()
	s.Start(ToolText, Pt(100, 100), testCanvas)
	s.InsertRune('h')
	s.InsertRune('i')
	s.Commit()
	m := text.DefaultMetrics()
	sel := NewSelectionController(s, m, DefaultHandleSize)
	sel.Select(0)
	el, _ := s.At(0)
	tx := el.(*Text)

	w0, h0 := m.Measure("hi", tx.FontSize)
	anchor := tx.Position.Add(Pt(w0, h0)) // bottom-right content corner

	h := handleByKind(t, sel, HandleTopLeft)
	sel.BeginDrag(h)
	// Shrink to half by moving the corner inward by half the content
	// diagonal. The handle sits on the padded box, but the fixed corner
	// must be the content one, unmoved by the constant padding.
	sel.Drag(h.Position.Add(Pt(w0/2, h0/2)))
	sel.EndDrag()

	if math.Abs(tx.FontSize-12) > 1e-9 {
		t.Errorf("font size = %v, want 12", tx.FontSize)
	}
	w1, h1 := m.Measure("hi", tx.FontSize)
	got := tx.Position.Add(Pt(w1, h1))
	if math.Abs(got.X-anchor.X) > 1e-9 || math.Abs(got.Y-anchor.Y) > 1e-9 {
		t.Errorf("anchored corner = %v, want %v", got, anchor)
	}
}

func TestSelection_TextScalingClamps(t *testing.T) {
	s := newTestStore()
	s.Start(ToolText, Pt(100, 100), testCanvas)
	s.InsertRune('h')
	s.Commit()
	sel := NewSelectionController(s, text.DefaultMetrics(), DefaultHandleSize)
	sel.Select(0)
	el, _ := s.At(0)
	tx := el.(*Text)

	h := handleByKind(t, sel, HandleBottomRight)
	opposite := handleByKind(t, sel, HandleTopLeft).Position

	sel.BeginDrag(h)
	// Collapse past the opposite corner: the multiplier clamps at 0.1 and
	// the font size at its absolute floor.
	sel.Drag(opposite.Sub(Pt(500, 500)))
	sel.EndDrag()

	if tx.FontSize != DefaultThresholds().MinFontSize {
		t.Errorf("font size = %v, want floor %v", tx.FontSize, DefaultThresholds().MinFontSize)
	}
}

func TestSelection_MoveSelected(t *testing.T) {
	sel, r := selWithRect(t)
	sel.MoveSelected(Pt(20, 10))
	if r.Start != Pt(70, 60) || r.End != Pt(170, 130) {
		t.Errorf("rectangle = %v-%v, want (70,60)-(170,130)", r.Start, r.End)
	}
	if h := handleByKind(t, sel, HandleTopLeft); h.Position != Pt(70, 60) {
		t.Errorf("handles not regenerated: top-left at %v", h.Position)
	}
}

func TestSelection_RefreshAfterStoreShrink(t *testing.T) {
	sel, _ := selWithRect(t)
	sel.store.Remove(0)
	sel.Refresh()
	if _, ok := sel.Selected(); ok {
		t.Error("selection survived element removal")
	}
}
