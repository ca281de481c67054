package annotate

// MinBoxSize is the minimum crop region extent on both axes, in pixels.
const MinBoxSize = 20.0

// CropState is the drag state of the crop region controller.
type CropState int

const (
	CropIdle CropState = iota
	CropCreating
	CropMoving
	CropResizing
)

// CropController manages the single capture rectangle. It shares the
// coordinate space and minimum-size invariant with drawing elements but is
// otherwise independent of the element store.
//
// States other than CropIdle exist only while the pointer button is held;
// any release path returns to CropIdle. Begin is not reentrant: a second
// Begin while creating is ignored.
type CropController struct {
	state      CropState
	region     Rect
	hasRegion  bool // an in-progress region passed the minimum size
	finalized  bool
	anchor     Point
	active     HandleKind
	minBox     float64
	handleSize float64
	viewport   ViewportProvider
}

// NewCropController creates an idle controller with no region.
func NewCropController(vp ViewportProvider, minBox, handleSize float64) *CropController {
	return &CropController{
		minBox:     minBox,
		handleSize: handleSize,
		viewport:   vp,
	}
}

// State returns the current drag state.
func (c *CropController) State() CropState { return c.state }

// Finalized returns true once a region has been committed.
func (c *CropController) Finalized() bool { return c.finalized }

// Region returns the crop rectangle and whether one is set.
func (c *CropController) Region() (Rect, bool) {
	return c.region, c.hasRegion
}

// Begin starts region creation at p. No-op if a region is already
// finalized or a drag is in progress.
func (c *CropController) Begin(p Point) {
	if c.finalized || c.state != CropIdle {
		return
	}
	c.state = CropCreating
	c.anchor = p
	c.hasRegion = false
}

// Update recomputes the in-progress region from the drag anchor and the
// current pointer, clamped to the viewport. The region is only adopted
// once both axes meet the minimum box size; below that the last valid
// region is kept, so the box refuses to shrink past the minimum.
func (c *CropController) Update(p Point) {
	switch c.state {
	case CropCreating:
		cand := c.clampToViewport(RectFromPoints(c.anchor, p))
		if cand.Width() >= c.minBox && cand.Height() >= c.minBox {
			c.region = cand
			c.hasRegion = true
		}
	case CropResizing:
		c.resize(c.active, p)
	case CropIdle, CropMoving:
		// Moving is driven by MoveBy; nothing to do here.
	}
}

// Commit finalizes the in-progress region if both axes meet the minimum
// size, otherwise discards it. Returns true if the region was finalized.
func (c *CropController) Commit() bool {
	if c.state != CropCreating {
		c.state = CropIdle
		return false
	}
	c.state = CropIdle
	if !c.hasRegion {
		return false
	}
	c.finalized = true
	return true
}

// BeginMove enters the Moving state. Only valid on a finalized region.
func (c *CropController) BeginMove(p Point) {
	if !c.finalized || c.state != CropIdle {
		return
	}
	c.state = CropMoving
	c.anchor = p
}

// BeginResize enters the Resizing state for the given handle.
func (c *CropController) BeginResize(k HandleKind, p Point) {
	if !c.finalized || c.state != CropIdle {
		return
	}
	c.state = CropResizing
	c.active = k
	c.anchor = p
}

// EndDrag returns to Idle after a move or resize.
func (c *CropController) EndDrag() {
	c.state = CropIdle
}

// MoveBy translates the region, clamping so it never exits the viewport.
// When an edge hits the boundary the opposite edge is held at the region's
// size, so the box slides along the boundary instead of shrinking.
func (c *CropController) MoveBy(delta Point) {
	if !c.hasRegion {
		return
	}
	w, h := c.viewport.ViewportSize()
	bw, bh := c.region.Width(), c.region.Height()

	nm := c.region.Min.Add(delta)
	nm.X = min(max(nm.X, 0), w-bw)
	nm.Y = min(max(nm.Y, 0), h-bh)

	c.region = Rect{Min: nm, Max: nm.Add(Pt(bw, bh))}
}

// resize updates the bounding coordinates owned by handle k, swaps min/max
// per axis if the drag crossed over, then re-clamps to the minimum size by
// pushing the edge the handle owns outward, and finally clamps to the
// viewport.
func (c *CropController) resize(k HandleKind, p Point) {
	minX, minY := c.region.Min.X, c.region.Min.Y
	maxX, maxY := c.region.Max.X, c.region.Max.Y

	switch k {
	case HandleTopLeft:
		minX, minY = p.X, p.Y
	case HandleTopCenter:
		minY = p.Y
	case HandleTopRight:
		maxX, minY = p.X, p.Y
	case HandleMiddleRight:
		maxX = p.X
	case HandleBottomRight:
		maxX, maxY = p.X, p.Y
	case HandleBottomCenter:
		maxY = p.Y
	case HandleBottomLeft:
		minX, maxY = p.X, p.Y
	case HandleMiddleLeft:
		minX = p.X
	default:
		return
	}

	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	if maxX-minX < c.minBox {
		if k == HandleTopLeft || k == HandleMiddleLeft || k == HandleBottomLeft {
			minX = maxX - c.minBox
		} else {
			maxX = minX + c.minBox
		}
	}
	if maxY-minY < c.minBox {
		if k == HandleTopLeft || k == HandleTopCenter || k == HandleTopRight {
			minY = maxY - c.minBox
		} else {
			maxY = minY + c.minBox
		}
	}

	c.region = c.clampToViewport(Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)})
}

// Reset clears the region and exits editing.
func (c *CropController) Reset() {
	c.state = CropIdle
	c.region = Rect{}
	c.hasRegion = false
	c.finalized = false
	c.active = HandleNone
}

// Handles returns the 8 boundary handles of the region, or nil when no
// region is set.
func (c *CropController) Handles() []Handle {
	if !c.hasRegion {
		return nil
	}
	return boxHandles(c.region, c.handleSize, CropOwner)
}

// HandleAt returns the handle under p, if any.
func (c *CropController) HandleAt(p Point) (HandleKind, bool) {
	for _, h := range c.Handles() {
		if h.HitTest(p) {
			return h.Kind, true
		}
	}
	return HandleNone, false
}

// Contains reports whether p is inside the region body, excluding the
// handle hit areas.
func (c *CropController) Contains(p Point) bool {
	if !c.hasRegion || !c.region.Contains(p) {
		return false
	}
	_, onHandle := c.HandleAt(p)
	return !onHandle
}

func (c *CropController) clampToViewport(r Rect) Rect {
	w, h := c.viewport.ViewportSize()
	r.Min.X = max(r.Min.X, 0)
	r.Min.Y = max(r.Min.Y, 0)
	r.Max.X = min(r.Max.X, w)
	r.Max.Y = min(r.Max.Y, h)
	return r
}
