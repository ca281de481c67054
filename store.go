package annotate

import "strings"

// Thresholds collects the per-variant geometry limits. The persistence
// thresholds gate what survives Commit; the interactive minimums are the
// floors enforced while editing a committed element. They are deliberately
// separate so tiny in-progress shapes still give live feedback without
// zero-area artifacts ever being saved.
//
// Freehand and Text have no geometric minimum by design: a stroke persists
// with a single point, text persists when its trimmed content is non-empty.
type Thresholds struct {
	// Persistence minimums, checked at Commit.
	SaveRectSize float64 // both rectangle axes
	SaveRadius   float64 // both ellipse radii
	SaveArrowLen float64 // arrow endpoint distance

	// Interactive minimums, enforced by selection edits.
	MinRectSize float64
	MinRadius   float64
	MinFontSize float64
	MaxFontSize float64
}

// DefaultThresholds returns the stock limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SaveRectSize: 5,
		SaveRadius:   5,
		SaveArrowLen: 5,
		MinRectSize:  5,
		MinRadius:    5,
		MinFontSize:  8,
		MaxFontSize:  200,
	}
}

// Style holds the defaults applied to newly created elements.
type Style struct {
	Color     RGBA
	Thickness float64
	FontSize  float64
}

// DefaultStyle returns the stock drawing style.
func DefaultStyle() Style {
	return Style{Color: Red, Thickness: 2, FontSize: 24}
}

// ElementStore owns the ordered collection of committed drawing elements
// plus at most one in-progress element. It is the single source of truth
// for element data: other components read it or replace the collection
// wholesale, never keep references into it across an event boundary.
type ElementStore struct {
	elements []Element
	current  Element
	canvas   Rect // committed crop region active for the current element
	th       Thresholds
	style    Style
}

// NewElementStore creates an empty store.
func NewElementStore(th Thresholds, style Style) *ElementStore {
	return &ElementStore{th: th, style: style}
}

// SetStyle changes the defaults for subsequently created elements.
func (s *ElementStore) SetStyle(st Style) { s.style = st }

// Style returns the current defaults.
func (s *ElementStore) Style() Style { return s.style }

// Len returns the number of committed elements.
func (s *ElementStore) Len() int { return len(s.elements) }

// At returns the committed element at index i, bounds-checked.
func (s *ElementStore) At(i int) (Element, bool) {
	if i < 0 || i >= len(s.elements) {
		return nil, false
	}
	return s.elements[i], true
}

// Elements returns the live committed collection. Callers must not retain
// the slice across an event boundary; use CloneElements for snapshots.
func (s *ElementStore) Elements() []Element { return s.elements }

// ReplaceAll swaps in a new committed collection (undo/redo restore path).
func (s *ElementStore) ReplaceAll(elems []Element) {
	s.elements = elems
}

// Current returns the in-progress element, or nil.
func (s *ElementStore) Current() Element { return s.current }

// Drawing returns true while an element is in progress.
func (s *ElementStore) Drawing() bool { return s.current != nil }

// TextEditing returns true while the in-progress element is a text element
// in editing mode.
func (s *ElementStore) TextEditing() bool {
	t, ok := s.current.(*Text)
	return ok && t.Editing
}

// Start creates a new in-progress element typed by tool at p. The canvas
// is the committed crop region; a pointer outside it is silently ignored.
// Text additionally enters the text-input sub-mode with empty content.
// Returns true if an element was started.
func (s *ElementStore) Start(tool Tool, p Point, canvas Rect) bool {
	if s.current != nil || !canvas.Contains(p) {
		return false
	}
	s.canvas = canvas

	switch tool {
	case ToolRectangle:
		s.current = NewRectangle(p, s.style.Color, s.style.Thickness)
	case ToolEllipse:
		s.current = NewEllipse(p, s.style.Color, s.style.Thickness)
	case ToolArrow:
		s.current = NewArrow(p, s.style.Color, s.style.Thickness)
	case ToolFreehand:
		s.current = NewFreehand(p, s.style.Color, s.style.Thickness)
	case ToolText:
		fs := clampRange(s.style.FontSize, s.th.MinFontSize, s.th.MaxFontSize)
		s.current = NewText(p, s.style.Color, fs)
	default:
		return false
	}
	return true
}

// Update mutates the in-progress element from the current pointer.
// Samples outside the canvas are ignored. Freehand appends every accepted
// sample; there is no distance filtering.
func (s *ElementStore) Update(p Point) {
	if s.current == nil || !s.canvas.Contains(p) {
		return
	}
	switch e := s.current.(type) {
	case *Rectangle:
		e.End = p
	case *Ellipse:
		e.RadiusX = abs(p.X - e.Center.X)
		e.RadiusY = abs(p.Y - e.Center.Y)
	case *Arrow:
		e.End = p
	case *Freehand:
		e.Points = append(e.Points, p)
	case *Text:
		// Text geometry is driven by content, not by pointer drags.
	}
}

// Commit appends the in-progress element to the committed collection if it
// meets its variant's minimum-size-for-persistence rule, otherwise
// discards it. Returns the new element's index and whether it persisted.
func (s *ElementStore) Commit() (int, bool) {
	el := s.current
	if el == nil {
		return 0, false
	}
	s.current = nil

	if !s.persistable(el) {
		return 0, false
	}
	if r, ok := el.(*Rectangle); ok {
		r.Normalize()
	}
	if t, ok := el.(*Text); ok {
		t.Editing = false
	}
	s.elements = append(s.elements, el)
	return len(s.elements) - 1, true
}

// persistable applies the per-variant persistence rule.
func (s *ElementStore) persistable(el Element) bool {
	switch e := el.(type) {
	case *Rectangle:
		b := e.Bounds()
		return b.Width() >= s.th.SaveRectSize && b.Height() >= s.th.SaveRectSize
	case *Ellipse:
		return e.RadiusX >= s.th.SaveRadius && e.RadiusY >= s.th.SaveRadius
	case *Arrow:
		return e.Length() >= s.th.SaveArrowLen
	case *Freehand:
		return len(e.Points) >= 1
	case *Text:
		return strings.TrimSpace(e.Content) != ""
	default:
		return false
	}
}

// Discard drops the in-progress element without committing.
func (s *ElementStore) Discard() {
	s.current = nil
}

// Remove deletes the committed element at index i. Out-of-range indices
// are a no-op.
func (s *ElementStore) Remove(i int) {
	if i < 0 || i >= len(s.elements) {
		return
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
}

// InsertRune appends r to the in-progress text content.
func (s *ElementStore) InsertRune(r rune) {
	if t, ok := s.current.(*Text); ok && t.Editing {
		t.Content += string(r)
	}
}

// Backspace removes the last rune from the in-progress text content.
func (s *ElementStore) Backspace() {
	t, ok := s.current.(*Text)
	if !ok || !t.Editing || t.Content == "" {
		return
	}
	runes := []rune(t.Content)
	t.Content = string(runes[:len(runes)-1])
}

// Newline appends a line break to the in-progress text content.
func (s *ElementStore) Newline() {
	if t, ok := s.current.(*Text); ok && t.Editing {
		t.Content += "\n"
	}
}

// Thresholds returns the store's limits.
func (s *ElementStore) Thresholds() Thresholds { return s.th }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
