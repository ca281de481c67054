package annotate

import "github.com/google/uuid"

// GeometryCache maps an element's identity to its tessellated segment list,
// validated by a content fingerprint. Invalidation only marks an entry
// stale; storage is kept in place and overwritten by the next SegmentsFor
// call, so steady-state editing allocates nothing for unchanged elements.
//
// The cache follows the engine's single-threaded event model and needs no
// locking.
type GeometryCache struct {
	entries map[uuid.UUID]*cacheEntry
	stats   GeometryCacheStats
}

type cacheEntry struct {
	fingerprint uint64
	segments    []Segment
	valid       bool
}

// GeometryCacheStats counts cache activity for diagnostics.
type GeometryCacheStats struct {
	Hits       uint64
	Misses     uint64
	Recomputes uint64
}

// NewGeometryCache creates an empty cache.
func NewGeometryCache() *GeometryCache {
	return &GeometryCache{entries: make(map[uuid.UUID]*cacheEntry)}
}

// SegmentsFor returns the render segments for el, recomputing them only if
// the element's content fingerprint no longer matches the cached one or the
// entry was invalidated.
func (c *GeometryCache) SegmentsFor(el Element) []Segment {
	fp := el.Fingerprint()
	entry, ok := c.entries[el.ID()]
	if ok && entry.valid && entry.fingerprint == fp {
		c.stats.Hits++
		return entry.segments
	}

	if !ok {
		entry = &cacheEntry{}
		c.entries[el.ID()] = entry
		c.stats.Misses++
	} else {
		c.stats.Recomputes++
	}

	entry.segments = Tessellate(el)
	entry.fingerprint = fp
	entry.valid = true
	return entry.segments
}

// Invalidate marks the entry for el stale without evicting it.
func (c *GeometryCache) Invalidate(el Element) {
	if entry, ok := c.entries[el.ID()]; ok {
		entry.valid = false
	}
}

// InvalidateAll marks every entry stale without evicting storage.
func (c *GeometryCache) InvalidateAll() {
	for _, entry := range c.entries {
		entry.valid = false
	}
}

// Drop removes the entry for an element that no longer exists.
func (c *GeometryCache) Drop(id uuid.UUID) {
	delete(c.entries, id)
}

// Len returns the number of entries, valid or stale.
func (c *GeometryCache) Len() int {
	return len(c.entries)
}

// Stats returns a copy of the activity counters.
func (c *GeometryCache) Stats() GeometryCacheStats {
	return c.stats
}
