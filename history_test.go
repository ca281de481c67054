package annotate

import "testing"

func rectAt(x, y float64) *Rectangle {
	r := NewRectangle(Pt(x, y), Red, 2)
	r.End = Pt(x+100, y+70)
	return r
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(10)
	v1 := []Element{rectAt(50, 50)}
	v2 := append(CloneElements(v1), rectAt(0, 0))

	h.Snapshot(v1) // before the mutation producing v2
	restored, ok := h.Undo(v2)
	if !ok {
		t.Fatal("Undo failed")
	}
	if len(restored) != 1 {
		t.Fatalf("undo restored %d elements, want 1", len(restored))
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("Redo failed")
	}
	if len(redone) != 2 {
		t.Errorf("redo restored %d elements, want 2", len(redone))
	}
}

func TestHistory_EmptyStacksNoOp(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Undo(nil); ok {
		t.Error("Undo succeeded on empty stack")
	}
	if _, ok := h.Redo(nil); ok {
		t.Error("Redo succeeded on empty stack")
	}
}

func TestHistory_SnapshotClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Snapshot([]Element{rectAt(0, 0)})
	if _, ok := h.Undo([]Element{rectAt(1, 1)}); !ok {
		t.Fatal("Undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("no redo after undo")
	}
	h.Snapshot([]Element{rectAt(2, 2)})
	if h.CanRedo() {
		t.Error("redo stack survived a new snapshot")
	}
}

func TestHistory_DepthCapDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Snapshot([]Element{rectAt(float64(i), 0)})
	}

	var undone int
	cur := []Element{rectAt(99, 0)}
	for {
		restored, ok := h.Undo(cur)
		if !ok {
			break
		}
		cur = restored
		undone++
	}
	if undone != 3 {
		t.Errorf("undid %d times, want 3 (depth cap)", undone)
	}
	// The oldest surviving snapshot is i=2; 0 and 1 were dropped.
	if cur[0].(*Rectangle).Start != Pt(2, 0) {
		t.Errorf("deepest snapshot = %v, want (2,0)", cur[0].(*Rectangle).Start)
	}
}

func TestHistory_SnapshotsAreDeepCopies(t *testing.T) {
	h := NewHistory(10)
	r := rectAt(50, 50)
	live := []Element{r}
	h.Snapshot(live)

	// Mutating the live element must not corrupt the snapshot.
	r.Translate(Pt(20, 10))
	restored, _ := h.Undo(live)
	if restored[0].(*Rectangle).Start != Pt(50, 50) {
		t.Errorf("snapshot mutated: %v", restored[0].(*Rectangle).Start)
	}
	// Restored elements keep their identity for cache revalidation.
	if restored[0].ID() != r.ID() {
		t.Error("restore changed element identity")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10)
	h.Snapshot([]Element{rectAt(0, 0)})
	h.Undo(nil)
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("stacks survived Clear")
	}
}
