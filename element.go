package annotate

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Element is the closed sum type of drawing elements. The concrete variants
// are Rectangle, Ellipse, Arrow, Freehand, and Text; every consumer of an
// Element (hit-testing, tessellation, handle generation) switches
// exhaustively over these five so that adding a variant is a compile-time
// checklist rather than a runtime gap.
//
// Elements are identified by a stable ID assigned at creation. Clones keep
// the ID, so history snapshots and cache entries track the same logical
// element across undo/redo.
type Element interface {
	// Kind returns the tool that creates this element variant.
	Kind() Tool

	// ID returns the stable identity of the element.
	ID() uuid.UUID

	// Clone returns a deep copy sharing the same ID.
	Clone() Element

	// Translate shifts every coordinate-bearing field by d.
	Translate(d Point)

	// Fingerprint returns a structural hash of the variant tag and all
	// content fields. Equal content yields equal fingerprints; any
	// mutation changes it. Used to validate geometry cache entries.
	Fingerprint() uint64

	// sealed prevents variants outside this package.
	sealed()
}

// Rectangle is an axis-aligned rectangle outline.
// After normalization Start is the top-left corner and End the
// bottom-right, with both axes at least the interactive minimum size.
type Rectangle struct {
	id        uuid.UUID
	Start     Point
	End       Point
	Color     RGBA
	Thickness float64
}

// NewRectangle creates a rectangle with both corners at p.
func NewRectangle(p Point, color RGBA, thickness float64) *Rectangle {
	return &Rectangle{id: uuid.New(), Start: p, End: p, Color: color, Thickness: thickness}
}

func (r *Rectangle) Kind() Tool    { return ToolRectangle }
func (r *Rectangle) ID() uuid.UUID { return r.id }

func (r *Rectangle) Clone() Element {
	c := *r
	return &c
}

func (r *Rectangle) Translate(d Point) {
	r.Start = r.Start.Add(d)
	r.End = r.End.Add(d)
}

// Bounds returns the normalized bounding box.
func (r *Rectangle) Bounds() Rect {
	return RectFromPoints(r.Start, r.End)
}

// Normalize re-derives Start and End so that Start is the top-left and End
// the bottom-right corner.
func (r *Rectangle) Normalize() {
	b := r.Bounds()
	r.Start, r.End = b.Min, b.Max
}

func (r *Rectangle) Fingerprint() uint64 {
	h := newFingerprint(ToolRectangle)
	h.addFloat(r.Start.X)
	h.addFloat(r.Start.Y)
	h.addFloat(r.End.X)
	h.addFloat(r.End.Y)
	h.addColor(r.Color)
	h.addFloat(r.Thickness)
	return h.sum()
}

func (*Rectangle) sealed() {}

// Ellipse is an axis-aligned ellipse outline. Both radii stay at or above
// the minimum positive radius; they never reach zero or go negative.
type Ellipse struct {
	id        uuid.UUID
	Center    Point
	RadiusX   float64
	RadiusY   float64
	Color     RGBA
	Thickness float64
}

// NewEllipse creates a zero-radius ellipse centered at p.
func NewEllipse(p Point, color RGBA, thickness float64) *Ellipse {
	return &Ellipse{id: uuid.New(), Center: p, Color: color, Thickness: thickness}
}

func (e *Ellipse) Kind() Tool    { return ToolEllipse }
func (e *Ellipse) ID() uuid.UUID { return e.id }

func (e *Ellipse) Clone() Element {
	c := *e
	return &c
}

func (e *Ellipse) Translate(d Point) {
	e.Center = e.Center.Add(d)
}

// Bounds returns the bounding box of the ellipse.
func (e *Ellipse) Bounds() Rect {
	return Rect{
		Min: Point{X: e.Center.X - e.RadiusX, Y: e.Center.Y - e.RadiusY},
		Max: Point{X: e.Center.X + e.RadiusX, Y: e.Center.Y + e.RadiusY},
	}
}

// Contains reports whether p lies inside the ellipse using the normalized
// ellipse inequality. Returns false if either radius is not positive.
func (e *Ellipse) Contains(p Point) bool {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return false
	}
	dx := (p.X - e.Center.X) / e.RadiusX
	dy := (p.Y - e.Center.Y) / e.RadiusY
	return dx*dx+dy*dy <= 1
}

func (e *Ellipse) Fingerprint() uint64 {
	h := newFingerprint(ToolEllipse)
	h.addFloat(e.Center.X)
	h.addFloat(e.Center.Y)
	h.addFloat(e.RadiusX)
	h.addFloat(e.RadiusY)
	h.addColor(e.Color)
	h.addFloat(e.Thickness)
	return h.sum()
}

func (*Ellipse) sealed() {}

// Arrow is a straight segment with an arrowhead at End.
type Arrow struct {
	id        uuid.UUID
	Start     Point
	End       Point
	Color     RGBA
	Thickness float64
}

// NewArrow creates a zero-length arrow at p.
func NewArrow(p Point, color RGBA, thickness float64) *Arrow {
	return &Arrow{id: uuid.New(), Start: p, End: p, Color: color, Thickness: thickness}
}

func (a *Arrow) Kind() Tool    { return ToolArrow }
func (a *Arrow) ID() uuid.UUID { return a.id }

func (a *Arrow) Clone() Element {
	c := *a
	return &c
}

func (a *Arrow) Translate(d Point) {
	a.Start = a.Start.Add(d)
	a.End = a.End.Add(d)
}

// Length returns the distance between the endpoints.
func (a *Arrow) Length() float64 {
	return a.Start.Distance(a.End)
}

func (a *Arrow) Fingerprint() uint64 {
	h := newFingerprint(ToolArrow)
	h.addFloat(a.Start.X)
	h.addFloat(a.Start.Y)
	h.addFloat(a.End.X)
	h.addFloat(a.End.Y)
	h.addColor(a.Color)
	h.addFloat(a.Thickness)
	return h.sum()
}

func (*Arrow) sealed() {}

// Freehand is a polyline of raw pointer samples. Every sample is kept for
// rendering fidelity; strokes are final once committed and are intentionally
// non-interactive afterwards.
type Freehand struct {
	id        uuid.UUID
	Points    []Point
	Color     RGBA
	Thickness float64
}

// NewFreehand creates a stroke starting at p.
func NewFreehand(p Point, color RGBA, thickness float64) *Freehand {
	return &Freehand{id: uuid.New(), Points: []Point{p}, Color: color, Thickness: thickness}
}

func (f *Freehand) Kind() Tool    { return ToolFreehand }
func (f *Freehand) ID() uuid.UUID { return f.id }

func (f *Freehand) Clone() Element {
	c := *f
	c.Points = make([]Point, len(f.Points))
	copy(c.Points, f.Points)
	return &c
}

func (f *Freehand) Translate(d Point) {
	for i := range f.Points {
		f.Points[i] = f.Points[i].Add(d)
	}
}

func (f *Freehand) Fingerprint() uint64 {
	h := newFingerprint(ToolFreehand)
	for _, p := range f.Points {
		h.addFloat(p.X)
		h.addFloat(p.Y)
	}
	h.addColor(f.Color)
	h.addFloat(f.Thickness)
	return h.sum()
}

func (*Freehand) sealed() {}

// Text is a text label anchored at Position (top-left of its box).
// Content may be empty only while Editing is true; committed text always
// has trimmed non-empty content. FontSize is clamped to [MinFontSize,
// MaxFontSize] by every mutation path.
type Text struct {
	id       uuid.UUID
	Position Point
	Content  string
	FontSize float64
	Color    RGBA
	Editing  bool
	Rotation float64
}

// NewText creates an empty text element in editing mode at p.
func NewText(p Point, color RGBA, fontSize float64) *Text {
	return &Text{id: uuid.New(), Position: p, FontSize: fontSize, Color: color, Editing: true}
}

func (t *Text) Kind() Tool    { return ToolText }
func (t *Text) ID() uuid.UUID { return t.id }

func (t *Text) Clone() Element {
	c := *t
	return &c
}

func (t *Text) Translate(d Point) {
	t.Position = t.Position.Add(d)
}

// Lines splits the content into display lines.
func (t *Text) Lines() []string {
	return strings.Split(t.Content, "\n")
}

func (t *Text) Fingerprint() uint64 {
	h := newFingerprint(ToolText)
	h.addFloat(t.Position.X)
	h.addFloat(t.Position.Y)
	h.addString(t.Content)
	h.addFloat(t.FontSize)
	h.addColor(t.Color)
	if t.Editing {
		h.addFloat(1)
	} else {
		h.addFloat(0)
	}
	h.addFloat(t.Rotation)
	return h.sum()
}

func (*Text) sealed() {}

// CloneElements deep-copies a committed element slice. Used by history
// snapshots and by the export path so no caller holds a live reference
// into the store.
func CloneElements(elems []Element) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	for i, el := range elems {
		out[i] = el.Clone()
	}
	return out
}

// fingerprint accumulates a 64-bit FNV-1a hash over the discriminant and
// fields of an element without allocating an intermediate string.
type fingerprint uint64

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func newFingerprint(tag Tool) fingerprint {
	h := fingerprint(fnvOffset)
	return h.mix(uint64(tag))
}

func (h fingerprint) mix(v uint64) fingerprint {
	h ^= fingerprint(v)
	h *= fnvPrime
	return h
}

func (h *fingerprint) addFloat(v float64) {
	*h = h.mix(math.Float64bits(v))
}

func (h *fingerprint) addString(s string) {
	for i := 0; i < len(s); i++ {
		*h = h.mix(uint64(s[i]))
	}
	// Length guards against concatenation collisions between fields.
	*h = h.mix(uint64(len(s)))
}

func (h *fingerprint) addColor(c RGBA) {
	h.addFloat(c.R)
	h.addFloat(c.G)
	h.addFloat(c.B)
	h.addFloat(c.A)
}

func (h fingerprint) sum() uint64 { return uint64(h) }
