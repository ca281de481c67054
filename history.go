package annotate

// DefaultHistoryDepth caps the undo stack. Whole-collection snapshots cost
// memory proportional to depth times collection size, so the cap keeps the
// worst case bounded.
const DefaultHistoryDepth = 50

// History implements snapshot-based undo/redo over the committed element
// collection. Snapshots are deep clones; elements keep their IDs across
// restore, so the geometry cache re-validates by fingerprint instead of
// refilling from scratch.
type History struct {
	undo  [][]Element
	redo  [][]Element
	depth int
}

// NewHistory creates an empty history with the given stack depth cap.
// Non-positive depths fall back to the default.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Snapshot pushes a deep clone of current onto the undo stack, dropping the
// oldest entry past the depth cap, and clears the redo stack. Call it
// immediately before any mutation of the committed collection.
func (h *History) Snapshot(current []Element) {
	h.undo = append(h.undo, CloneElements(current))
	if len(h.undo) > h.depth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo pops the most recent snapshot, pushing current onto the redo stack.
// Returns the restored collection, or false if the undo stack is empty.
func (h *History) Undo(current []Element) ([]Element, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	h.redo = append(h.redo, CloneElements(current))
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top, true
}

// Redo is the symmetric operation on the redo stack.
func (h *History) Redo(current []Element) ([]Element, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	h.undo = append(h.undo, CloneElements(current))
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top, true
}

// CanUndo returns true if an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo returns true if a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
