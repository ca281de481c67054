package annotate

// HandleKind identifies a manipulation handle on a selected element or on
// the crop region.
type HandleKind int

const (
	HandleNone HandleKind = iota

	// Boundary handles, shared by rectangles, ellipses, text boxes, and
	// the crop region.
	HandleTopLeft
	HandleTopCenter
	HandleTopRight
	HandleMiddleRight
	HandleBottomRight
	HandleBottomCenter
	HandleBottomLeft
	HandleMiddleLeft

	// Arrow endpoint handles.
	HandleArrowStart
	HandleArrowEnd
)

// String returns the handle name for logging.
func (k HandleKind) String() string {
	switch k {
	case HandleTopLeft:
		return "top-left"
	case HandleTopCenter:
		return "top-center"
	case HandleTopRight:
		return "top-right"
	case HandleMiddleRight:
		return "middle-right"
	case HandleBottomRight:
		return "bottom-right"
	case HandleBottomCenter:
		return "bottom-center"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleMiddleLeft:
		return "middle-left"
	case HandleArrowStart:
		return "arrow-start"
	case HandleArrowEnd:
		return "arrow-end"
	default:
		return "none"
	}
}

// IsCorner returns true for the four corner handles.
func (k HandleKind) IsCorner() bool {
	switch k {
	case HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft:
		return true
	}
	return false
}

// CropOwner marks a handle as belonging to the crop region rather than a
// committed element.
const CropOwner = -1

// DefaultHandleSize is the stock handle diameter in pixels.
const DefaultHandleSize = 12.0

// Handle is an ephemeral control point. Handles are regenerated on every
// selection or geometry change and are never persisted.
type Handle struct {
	Kind     HandleKind
	Position Point
	Size     float64
	Owner    int // element index, or CropOwner
}

// HitTest reports whether p is within the handle's circular hit area:
// Euclidean distance from the handle center at most Size/2.
func (h Handle) HitTest(p Point) bool {
	return p.Distance(h.Position) <= h.Size*0.5
}

// boxHandles returns the 8 boundary handles of a normalized rectangle, in
// clockwise order starting at the top-left corner.
func boxHandles(b Rect, size float64, owner int) []Handle {
	c := b.Center()
	return []Handle{
		{Kind: HandleTopLeft, Position: b.Min, Size: size, Owner: owner},
		{Kind: HandleTopCenter, Position: Pt(c.X, b.Min.Y), Size: size, Owner: owner},
		{Kind: HandleTopRight, Position: Pt(b.Max.X, b.Min.Y), Size: size, Owner: owner},
		{Kind: HandleMiddleRight, Position: Pt(b.Max.X, c.Y), Size: size, Owner: owner},
		{Kind: HandleBottomRight, Position: b.Max, Size: size, Owner: owner},
		{Kind: HandleBottomCenter, Position: Pt(c.X, b.Max.Y), Size: size, Owner: owner},
		{Kind: HandleBottomLeft, Position: Pt(b.Min.X, b.Max.Y), Size: size, Owner: owner},
		{Kind: HandleMiddleLeft, Position: Pt(b.Min.X, c.Y), Size: size, Owner: owner},
	}
}

// cornerHandles returns only the 4 corner handles of a normalized
// rectangle. Text elements scale uniformly, so they expose corners only.
func cornerHandles(b Rect, size float64, owner int) []Handle {
	return []Handle{
		{Kind: HandleTopLeft, Position: b.Min, Size: size, Owner: owner},
		{Kind: HandleTopRight, Position: Pt(b.Max.X, b.Min.Y), Size: size, Owner: owner},
		{Kind: HandleBottomRight, Position: b.Max, Size: size, Owner: owner},
		{Kind: HandleBottomLeft, Position: Pt(b.Min.X, b.Max.Y), Size: size, Owner: owner},
	}
}
