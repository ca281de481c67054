package annotate

import (
	"math"

	"github.com/gogpu/annotate/text"
)

const (
	// arrowHitThreshold is the maximum perpendicular distance from the
	// pointer to an arrow's segment that still counts as a hit.
	arrowHitThreshold = 6.0

	// textPadding is added around the measured text box for hit-testing
	// and handle placement.
	textPadding = 4.0
)

// SelectionController tracks the selected committed element and its
// manipulation handles, and applies handle drags and whole-element moves.
//
// Handles are ephemeral: regenerated on every selection or geometry change,
// never persisted. Indices into the store are re-validated on each call, so
// a stale selection after an undo simply deselects.
type SelectionController struct {
	store      *ElementStore
	measurer   text.Measurer
	handleSize float64

	selected int // index into the store, or -1
	handles  []Handle

	dragging bool
	active   HandleKind
	textDrag textDragState
}

// textDragState captures the geometry at the start of a text corner drag.
// The scale factor is derived from displacement along the fixed direction
// away from the opposite corner, so it is relative to the drag origin, not
// to the live (already scaled) box. The anchor is the content-box corner:
// padding is constant under scaling, so anchoring there holds the opposite
// corner of both the content and the padded box exactly fixed.
type textDragState struct {
	corner   Point   // dragged padded corner, displacement origin
	opposite Point   // opposite content-box corner, held fixed
	dir      Point   // unit direction opposite -> corner
	base     float64 // content diagonal length at drag start
	fontSize float64
	position Point
}

// NewSelectionController creates a controller with no selection.
func NewSelectionController(store *ElementStore, m text.Measurer, handleSize float64) *SelectionController {
	return &SelectionController{
		store:      store,
		measurer:   m,
		handleSize: handleSize,
		selected:   -1,
	}
}

// Selected returns the selected element index, if any.
func (s *SelectionController) Selected() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// SelectedElement returns the selected element, re-validating the index
// against the store.
func (s *SelectionController) SelectedElement() (Element, bool) {
	if s.selected < 0 {
		return nil, false
	}
	return s.store.At(s.selected)
}

// Handles returns the current handle list. Empty when nothing is selected.
func (s *SelectionController) Handles() []Handle {
	return s.handles
}

// Dragging returns true while a handle drag is in progress.
func (s *SelectionController) Dragging() bool { return s.dragging }

// Select selects the committed element at index, generating its handles.
// Returns the element's tool so the caller can switch the active tool
// indicator to match. Out-of-range indices deselect.
func (s *SelectionController) Select(index int) (Tool, bool) {
	el, ok := s.store.At(index)
	if !ok {
		s.Deselect()
		return ToolNone, false
	}
	s.selected = index
	s.handles = s.generateHandles(el, index)
	return el.Kind(), true
}

// Deselect clears the selection and all handle and drag state.
func (s *SelectionController) Deselect() {
	s.selected = -1
	s.handles = nil
	s.dragging = false
	s.active = HandleNone
}

// Refresh regenerates handles for the current selection, deselecting if the
// index no longer resolves (after undo/redo or delete).
func (s *SelectionController) Refresh() {
	if s.selected < 0 {
		return
	}
	el, ok := s.store.At(s.selected)
	if !ok {
		s.Deselect()
		return
	}
	s.handles = s.generateHandles(el, s.selected)
}

// ElementAt returns the index of the topmost committed element under p.
func (s *SelectionController) ElementAt(p Point) (int, bool) {
	elems := s.store.Elements()
	for i := len(elems) - 1; i >= 0; i-- {
		if s.HitTestElement(p, elems[i]) {
			return i, true
		}
	}
	return 0, false
}

// HandleAt returns the selection handle under p, if any.
func (s *SelectionController) HandleAt(p Point) (Handle, bool) {
	for _, h := range s.handles {
		if h.HitTest(p) {
			return h, true
		}
	}
	return Handle{}, false
}

// HitTestElement applies the per-variant geometric predicate.
func (s *SelectionController) HitTestElement(p Point, el Element) bool {
	switch e := el.(type) {
	case *Rectangle:
		return e.Bounds().Contains(p)
	case *Ellipse:
		return e.Contains(p)
	case *Arrow:
		return segmentDistance(p, e.Start, e.End) <= arrowHitThreshold
	case *Freehand:
		// Strokes are final once committed.
		return false
	case *Text:
		return s.textBounds(e).Contains(p)
	default:
		return false
	}
}

// generateHandles builds the handle list for an element: 8 boundary handles
// for rectangles and ellipses, 4 corners for text, 2 endpoints for arrows,
// none for freehand.
func (s *SelectionController) generateHandles(el Element, index int) []Handle {
	switch e := el.(type) {
	case *Rectangle:
		return boxHandles(e.Bounds(), s.handleSize, index)
	case *Ellipse:
		return boxHandles(e.Bounds(), s.handleSize, index)
	case *Arrow:
		return []Handle{
			{Kind: HandleArrowStart, Position: e.Start, Size: s.handleSize, Owner: index},
			{Kind: HandleArrowEnd, Position: e.End, Size: s.handleSize, Owner: index},
		}
	case *Freehand:
		return nil
	case *Text:
		return cornerHandles(s.textBounds(e), s.handleSize, index)
	default:
		return nil
	}
}

// textBounds derives the text box from content lines and font metrics plus
// fixed padding.
func (s *SelectionController) textBounds(t *Text) Rect {
	var width, height float64
	for _, line := range t.Lines() {
		w, h := s.measurer.Measure(line, t.FontSize)
		if w > width {
			width = w
		}
		height += h
	}
	b := Rect{Min: t.Position, Max: t.Position.Add(Pt(width, height))}
	return b.Inset(-textPadding)
}

// BeginDrag starts a handle drag on the selected element.
func (s *SelectionController) BeginDrag(h Handle) {
	el, ok := s.SelectedElement()
	if !ok || h.Owner != s.selected {
		return
	}
	s.dragging = true
	s.active = h.Kind

	if t, ok := el.(*Text); ok && h.Kind.IsCorner() {
		b := s.textBounds(t)
		corner, _ := cornerPair(b, h.Kind)
		cc, opposite := cornerPair(b.Inset(textPadding), h.Kind)
		diag := cc.Sub(opposite)
		s.textDrag = textDragState{
			corner:   corner,
			opposite: opposite,
			dir:      diag.Normalize(),
			base:     diag.Length(),
			fontSize: t.FontSize,
			position: t.Position,
		}
	}
}

// Drag applies the active handle's transform for the current pointer and
// regenerates handles so their positions track the live shape.
func (s *SelectionController) Drag(p Point) {
	if !s.dragging {
		return
	}
	el, ok := s.SelectedElement()
	if !ok {
		s.Deselect()
		return
	}

	th := s.store.Thresholds()
	switch e := el.(type) {
	case *Rectangle:
		s.dragRectangle(e, p, th)
	case *Ellipse:
		s.dragEllipse(e, p, th)
	case *Arrow:
		switch s.active {
		case HandleArrowStart:
			e.Start = p
		case HandleArrowEnd:
			e.End = p
		}
	case *Freehand:
		// No handles; nothing to drag.
	case *Text:
		s.dragText(e, p, th)
	}
	s.Refresh()
}

// EndDrag finishes the active handle drag.
func (s *SelectionController) EndDrag() {
	s.dragging = false
	s.active = HandleNone
}

// MoveSelected translates the selected element and its handles.
func (s *SelectionController) MoveSelected(delta Point) {
	el, ok := s.SelectedElement()
	if !ok {
		return
	}
	el.Translate(delta)
	s.Refresh()
}

// dragRectangle applies a corner or edge drag. Corner handles are retyped
// every step from which quadrant the pointer occupies relative to the
// rectangle's center, so dragging past the opposite corner flips the
// handle's effective behavior instead of inverting the shape.
func (s *SelectionController) dragRectangle(r *Rectangle, p Point, th Thresholds) {
	k := s.active
	if k.IsCorner() {
		k = cornerForQuadrant(p, r.Bounds().Center())
	}

	switch k {
	case HandleTopLeft:
		r.Start = p
	case HandleTopCenter:
		r.Start.Y = p.Y
	case HandleTopRight:
		r.End.X, r.Start.Y = p.X, p.Y
	case HandleMiddleRight:
		r.End.X = p.X
	case HandleBottomRight:
		r.End = p
	case HandleBottomCenter:
		r.End.Y = p.Y
	case HandleBottomLeft:
		r.Start.X, r.End.Y = p.X, p.Y
	case HandleMiddleLeft:
		r.Start.X = p.X
	default:
		return
	}

	r.Normalize()

	// Expand a below-minimum axis by pushing the dragged edge outward,
	// keeping the edge nearer the opposite corner fixed.
	if r.End.X-r.Start.X < th.MinRectSize {
		if k == HandleTopLeft || k == HandleMiddleLeft || k == HandleBottomLeft {
			r.Start.X = r.End.X - th.MinRectSize
		} else {
			r.End.X = r.Start.X + th.MinRectSize
		}
	}
	if r.End.Y-r.Start.Y < th.MinRectSize {
		if k == HandleTopLeft || k == HandleTopCenter || k == HandleTopRight {
			r.Start.Y = r.End.Y - th.MinRectSize
		} else {
			r.End.Y = r.Start.Y + th.MinRectSize
		}
	}
}

// dragEllipse adjusts both radii from a corner handle or a single axis from
// an edge handle, flooring radii at the minimum so they never reach zero.
func (s *SelectionController) dragEllipse(e *Ellipse, p Point, th Thresholds) {
	switch s.active {
	case HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft:
		e.RadiusX = max(abs(p.X-e.Center.X), th.MinRadius)
		e.RadiusY = max(abs(p.Y-e.Center.Y), th.MinRadius)
	case HandleTopCenter, HandleBottomCenter:
		e.RadiusY = max(abs(p.Y-e.Center.Y), th.MinRadius)
	case HandleMiddleLeft, HandleMiddleRight:
		e.RadiusX = max(abs(p.X-e.Center.X), th.MinRadius)
	}
}

// dragText scales font size and box together. The factor comes from how far
// the dragged corner moved along the direction away from the opposite
// corner, relative to the drag-start diagonal, clamped to [0.1, 5.0]; the
// resulting font size is clamped to the configured range; the opposite
// corner stays fixed. Non-finite factors skip the step.
func (s *SelectionController) dragText(t *Text, p Point, th Thresholds) {
	if !s.active.IsCorner() {
		return
	}
	d := s.textDrag
	if d.base <= 0 {
		return
	}

	disp := p.Sub(d.corner).Dot(d.dir)
	factor := (d.base + disp) / d.base
	if !isFinite(factor) {
		return
	}
	factor = clampRange(factor, 0.1, 5.0)

	fs := clampRange(d.fontSize*factor, th.MinFontSize, th.MaxFontSize)
	applied := fs / d.fontSize

	t.FontSize = fs
	t.Position = d.opposite.Add(d.position.Sub(d.opposite).Mul(applied))
}

// cornerForQuadrant returns the corner handle kind matching the pointer's
// quadrant relative to the box center.
func cornerForQuadrant(p, center Point) HandleKind {
	switch {
	case p.X < center.X && p.Y < center.Y:
		return HandleTopLeft
	case p.X >= center.X && p.Y < center.Y:
		return HandleTopRight
	case p.X >= center.X && p.Y >= center.Y:
		return HandleBottomRight
	default:
		return HandleBottomLeft
	}
}

// cornerPair returns the position of corner k on box b and of the corner
// diagonally opposite it.
func cornerPair(b Rect, k HandleKind) (corner, opposite Point) {
	switch k {
	case HandleTopLeft:
		return b.Min, b.Max
	case HandleTopRight:
		return Pt(b.Max.X, b.Min.Y), Pt(b.Min.X, b.Max.Y)
	case HandleBottomRight:
		return b.Max, b.Min
	default: // HandleBottomLeft
		return Pt(b.Min.X, b.Max.Y), Pt(b.Max.X, b.Min.Y)
	}
}

// segmentDistance returns the distance from p to the closest point on the
// segment ab, clamped to the segment's extent.
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := clampRange(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
