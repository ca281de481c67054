package annotate

import "testing"

func TestGeometryCache_HitOnUnchangedContent(t *testing.T) {
	c := NewGeometryCache()
	r := rectAt(10, 10)

	first := c.SegmentsFor(r)
	second := c.SegmentsFor(r)
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("segment counts %d/%d, want 4", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Error("hit recomputed instead of returning cached storage")
	}

	st := c.Stats()
	if st.Misses != 1 || st.Hits != 1 || st.Recomputes != 0 {
		t.Errorf("stats = %+v, want 1 miss, 1 hit", st)
	}
}

func TestGeometryCache_RecomputesOnMutation(t *testing.T) {
	c := NewGeometryCache()
	r := rectAt(10, 10)
	c.SegmentsFor(r)

	r.Translate(Pt(5, 5))
	segs := c.SegmentsFor(r)
	if segs[0].A != Pt(15, 15) {
		t.Errorf("stale geometry returned: %v", segs[0].A)
	}
	if st := c.Stats(); st.Recomputes != 1 {
		t.Errorf("recomputes = %d, want 1", st.Recomputes)
	}
}

func TestGeometryCache_InvalidateKeepsStorage(t *testing.T) {
	c := NewGeometryCache()
	r := rectAt(10, 10)
	c.SegmentsFor(r)

	c.Invalidate(r)
	if c.Len() != 1 {
		t.Fatal("Invalidate evicted the entry")
	}
	segs := c.SegmentsFor(r)
	if len(segs) != 4 {
		t.Fatal("recompute after invalidate failed")
	}
	if st := c.Stats(); st.Recomputes != 1 {
		t.Errorf("recomputes = %d, want 1", st.Recomputes)
	}
}

func TestGeometryCache_InvalidateAll(t *testing.T) {
	c := NewGeometryCache()
	elems := []Element{rectAt(0, 0), rectAt(50, 50)}
	for _, el := range elems {
		c.SegmentsFor(el)
	}
	c.InvalidateAll()
	for _, el := range elems {
		c.SegmentsFor(el)
	}
	if st := c.Stats(); st.Recomputes != 2 {
		t.Errorf("recomputes = %d, want 2", st.Recomputes)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestGeometryCache_RevalidatesCloneWithSameContent(t *testing.T) {
	c := NewGeometryCache()
	r := rectAt(10, 10)
	c.SegmentsFor(r)

	// Undo/redo restores clones sharing the element's ID. Same content
	// means the entry revalidates as a hit after a blanket invalidation.
	clone := r.Clone()
	c.InvalidateAll()
	c.SegmentsFor(clone)
	c.SegmentsFor(clone)
	if st := c.Stats(); st.Hits != 1 {
		t.Errorf("hits = %d, want 1", st.Hits)
	}
}

func TestGeometryCache_Drop(t *testing.T) {
	c := NewGeometryCache()
	r := rectAt(10, 10)
	c.SegmentsFor(r)
	c.Drop(r.ID())
	if c.Len() != 0 {
		t.Error("Drop left the entry behind")
	}
}
