package annotate

import (
	"log/slog"
	"time"
)

// pointerMode tracks what the held pointer button is currently doing.
type pointerMode int

const (
	pmNone pointerMode = iota
	pmCropCreate
	pmCropMove
	pmCropResize
	pmDrawing
	pmHandleDrag
	pmPendingMove // element pressed; becomes pmMoveElement on first move
	pmMoveElement
)

// Frame is the per-redraw output consumed by the host's renderer: flattened
// line segments for all shape elements, text elements for the host's glyph
// pipeline, the active handle set, and the crop region.
type Frame struct {
	Segments []Segment
	Texts    []*Text
	Handles  []Handle
	Crop     Rect
	HasCrop  bool
}

// Editor is the engine facade. It owns the crop controller, element store,
// selection, history, and geometry cache, and routes host input events
// through them. All methods are synchronous and must be called from a
// single goroutine (the host's event loop).
//
// The editing session has two phases. Until a crop region is finalized,
// pointer input creates the region. Afterwards input is routed by priority:
// selection handles, crop handles, element selection and move, drawing
// (when a tool is active and nothing was hit), crop move.
type Editor struct {
	viewport ViewportProvider
	crop     *CropController
	store    *ElementStore
	sel      *SelectionController
	history  *History
	cache    *GeometryCache
	mapper   *CoordinateMapper
	flush    FlushPolicy
	sink     ExportSink

	tool        Tool
	mode        pointerMode
	lastPointer Point
	needsRedraw bool
	lastFlush   time.Time
}

// NewEditor creates an editor in the crop-creation phase.
func NewEditor(vp ViewportProvider, opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store := NewElementStore(o.thresholds, o.style)
	return &Editor{
		viewport: vp,
		crop:     NewCropController(vp, o.minBoxSize, o.handleSize),
		store:    store,
		sel:      NewSelectionController(store, o.measurer, o.handleSize),
		history:  NewHistory(o.historyDepth),
		cache:    NewGeometryCache(),
		mapper:   NewCoordinateMapper(vp),
		flush:    o.flush,
		sink:     o.sink,
	}
}

// Tool returns the active tool indicator.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool, committing any in-progress text,
// discarding any other in-progress element, and clearing the selection.
func (e *Editor) SetTool(t Tool) {
	if e.store.TextEditing() {
		e.commitCurrent()
	} else if e.store.Drawing() {
		e.store.Discard()
	}
	e.tool = t
	e.sel.Deselect()
	e.invalidate()
}

// Crop returns the crop region controller.
func (e *Editor) Crop() *CropController { return e.crop }

// Store returns the element store.
func (e *Editor) Store() *ElementStore { return e.store }

// Selection returns the selection controller.
func (e *Editor) Selection() *SelectionController { return e.sel }

// Cache returns the geometry cache.
func (e *Editor) Cache() *GeometryCache { return e.cache }

// History returns the undo/redo manager.
func (e *Editor) History() *History { return e.history }

// Mapper returns the coordinate mapper bound to the editor's viewport.
func (e *Editor) Mapper() *CoordinateMapper { return e.mapper }

// PointerPressed routes a pointer-down event at p.
func (e *Editor) PointerPressed(p Point) {
	e.lastPointer = p

	if !e.crop.Finalized() {
		e.crop.Begin(p)
		e.mode = pmCropCreate
		e.invalidate()
		return
	}

	// A click while editing text commits it and then proceeds normally.
	if e.store.TextEditing() {
		e.commitCurrent()
	}

	if h, ok := e.sel.HandleAt(p); ok {
		e.history.Snapshot(e.store.Elements())
		e.sel.BeginDrag(h)
		e.mode = pmHandleDrag
		Logger().Debug("handle drag start", slog.String("handle", h.Kind.String()))
		return
	}

	if k, ok := e.crop.HandleAt(p); ok {
		e.crop.BeginResize(k, p)
		e.mode = pmCropResize
		return
	}

	// Committed elements are hit-tested before the drawing branch: a press
	// on an existing element selects or moves it even while a drawing tool
	// is active, and a new element starts only on empty canvas.
	if i, ok := e.sel.ElementAt(p); ok {
		if kind, ok := e.sel.Select(i); ok {
			e.tool = kind
		}
		e.mode = pmPendingMove
		e.invalidate()
		return
	}

	if e.tool.IsDrawing() {
		region, _ := e.crop.Region()
		if e.store.Start(e.tool, p, region) {
			e.mode = pmDrawing
			e.invalidate()
		}
		return
	}

	if e.crop.Contains(p) {
		e.crop.BeginMove(p)
		e.mode = pmCropMove
		return
	}

	e.sel.Deselect()
	e.invalidate()
}

// PointerMoved routes a pointer-move event at p.
func (e *Editor) PointerMoved(p Point) {
	switch e.mode {
	case pmCropCreate, pmCropResize:
		e.crop.Update(p)
		e.invalidate()
	case pmCropMove:
		e.crop.MoveBy(p.Sub(e.lastPointer))
		e.invalidate()
	case pmDrawing:
		e.store.Update(p)
		e.invalidate()
	case pmHandleDrag:
		e.sel.Drag(p)
		e.invalidate()
	case pmPendingMove:
		// First actual movement turns the press into a move.
		e.history.Snapshot(e.store.Elements())
		e.mode = pmMoveElement
		e.sel.MoveSelected(p.Sub(e.lastPointer))
		e.invalidate()
	case pmMoveElement:
		e.sel.MoveSelected(p.Sub(e.lastPointer))
		e.invalidate()
	}
	e.lastPointer = p
}

// PointerReleased routes a pointer-up event at p.
func (e *Editor) PointerReleased(p Point) {
	switch e.mode {
	case pmCropCreate:
		if e.crop.Commit() {
			region, _ := e.crop.Region()
			Logger().Info("crop finalized",
				slog.Float64("w", region.Width()), slog.Float64("h", region.Height()))
		}
		e.invalidate()
	case pmCropMove, pmCropResize:
		e.crop.EndDrag()
	case pmDrawing:
		// Text stays in its editing sub-mode until committed by key or a
		// later click; every other variant commits on release.
		if !e.store.TextEditing() {
			e.commitCurrent()
		}
	case pmHandleDrag:
		e.sel.EndDrag()
	}
	e.mode = pmNone
	e.lastPointer = p
}

// KeyPressed routes a key event.
func (e *Editor) KeyPressed(k Key, mods Modifiers) {
	switch k {
	case KeyEscape:
		if e.store.Drawing() {
			// Cancel without committing or snapshotting.
			e.store.Discard()
		} else {
			e.sel.Deselect()
		}
		e.mode = pmNone
		e.invalidate()

	case KeyEnter:
		if !e.store.TextEditing() {
			return
		}
		if mods.Has(ModShift) {
			e.store.Newline()
		} else {
			e.commitCurrent()
		}
		e.invalidate()

	case KeyBackspace:
		if e.store.TextEditing() {
			e.store.Backspace()
			e.invalidate()
		}

	case KeyDelete:
		i, ok := e.sel.Selected()
		if !ok {
			return
		}
		el, _ := e.store.At(i)
		e.history.Snapshot(e.store.Elements())
		e.store.Remove(i)
		if el != nil {
			e.cache.Drop(el.ID())
		}
		e.sel.Deselect()
		e.invalidate()

	case KeyUndo:
		e.undo()

	case KeyRedo:
		e.redo()

	case KeyReset:
		e.reset()
	}
}

// TextInput appends a typed rune to the in-progress text element.
func (e *Editor) TextInput(r rune) {
	if !e.store.TextEditing() {
		return
	}
	e.store.InsertRune(r)
	e.invalidate()
}

// commitCurrent snapshots and commits the in-progress element, selecting it
// on success. The snapshot is recorded only when something was committed,
// so a discarded too-small shape leaves history untouched.
func (e *Editor) commitCurrent() {
	prev := e.store.Elements()
	idx, ok := e.store.Commit()
	if !ok {
		e.invalidate()
		return
	}
	e.history.Snapshot(prev)
	if kind, ok := e.sel.Select(idx); ok {
		e.tool = kind
	}
	e.invalidate()
}

func (e *Editor) undo() {
	restored, ok := e.history.Undo(e.store.Elements())
	if !ok {
		return
	}
	e.store.ReplaceAll(restored)
	e.sel.Deselect()
	e.cache.InvalidateAll()
	e.invalidate()
	Logger().Debug("undo", slog.Int("elements", e.store.Len()))
}

func (e *Editor) redo() {
	restored, ok := e.history.Redo(e.store.Elements())
	if !ok {
		return
	}
	e.store.ReplaceAll(restored)
	e.sel.Deselect()
	e.cache.InvalidateAll()
	e.invalidate()
	Logger().Debug("redo", slog.Int("elements", e.store.Len()))
}

// reset clears every piece of session state and returns to crop creation.
func (e *Editor) reset() {
	e.crop.Reset()
	e.store.Discard()
	e.store.ReplaceAll(nil)
	e.sel.Deselect()
	e.history.Clear()
	e.cache = NewGeometryCache()
	e.tool = ToolNone
	e.mode = pmNone
	e.invalidate()
	Logger().Info("session reset")
}

// Frame assembles the renderable state for the next redraw: cached segments
// for every committed element plus the in-progress one, text elements for
// the host's glyph pipeline, and the combined handle list.
func (e *Editor) Frame() Frame {
	var f Frame

	for _, el := range e.store.Elements() {
		if t, ok := el.(*Text); ok {
			f.Texts = append(f.Texts, t)
			continue
		}
		f.Segments = append(f.Segments, e.cache.SegmentsFor(el)...)
	}
	if cur := e.store.Current(); cur != nil {
		if t, ok := cur.(*Text); ok {
			f.Texts = append(f.Texts, t)
		} else {
			f.Segments = append(f.Segments, e.cache.SegmentsFor(cur)...)
		}
	}

	f.Handles = append(f.Handles, e.sel.Handles()...)
	if e.crop.Finalized() {
		f.Handles = append(f.Handles, e.crop.Handles()...)
	}
	f.Crop, f.HasCrop = e.crop.Region()
	return f
}

// CursorHint returns the cursor the host should show for the pointer at p.
func (e *Editor) CursorHint(p Point) Cursor {
	if !e.crop.Finalized() {
		return CursorCrosshair
	}
	if h, ok := e.sel.HandleAt(p); ok {
		return cursorForHandle(h.Kind)
	}
	if k, ok := e.crop.HandleAt(p); ok {
		return cursorForHandle(k)
	}
	if e.store.TextEditing() {
		return CursorText
	}
	if _, ok := e.sel.ElementAt(p); ok {
		return CursorMove
	}
	if e.tool.IsDrawing() {
		region, _ := e.crop.Region()
		if region.Contains(p) {
			return CursorCrosshair
		}
		return CursorNotAllowed
	}
	if e.crop.Contains(p) {
		return CursorMove
	}
	return CursorDefault
}

// Complete hands the committed elements and crop region to the export sink.
// Returns nil when no sink is configured or no crop region exists.
func (e *Editor) Complete() error {
	region, ok := e.crop.Region()
	if e.sink == nil || !ok {
		return nil
	}
	if e.store.TextEditing() {
		e.commitCurrent()
	}
	err := e.sink.Export(CloneElements(e.store.Elements()), region)
	if err != nil {
		Logger().Warn("export failed", slog.Any("error", err))
		return err
	}
	Logger().Info("export complete", slog.Int("elements", e.store.Len()))
	return nil
}

// invalidate marks the session as needing a redraw.
func (e *Editor) invalidate() {
	e.needsRedraw = true
}

// NeedsRedraw reports whether any mutation occurred since the last flush.
func (e *Editor) NeedsRedraw() bool { return e.needsRedraw }

// TakeRedraw reports whether the host should render now, applying the
// wall-clock flush policy. Mutations are never dropped: if the throttle
// defers a flush, the redraw flag stays set for the next call.
func (e *Editor) TakeRedraw(now time.Time) bool {
	if !e.needsRedraw {
		return false
	}
	mode := FlushIdle
	if e.mode != pmNone {
		mode = FlushDragging
	}
	if !e.flush.ShouldFlush(now, e.lastFlush, mode) {
		return false
	}
	e.needsRedraw = false
	e.lastFlush = now
	return true
}
