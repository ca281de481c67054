package annotate

// Key identifies the keyboard keys the engine reacts to. The host maps its
// own key codes onto these before calling Editor.KeyPressed; everything
// else can be dropped at the boundary.
type Key int

const (
	KeyEscape Key = iota + 1
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyReset // clears the crop region and all drawing state (original: R)
	KeyUndo
	KeyRedo
)

// Modifiers is a bit set of modifier keys held during a key press.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if all modifiers in m are held.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// Cursor is the pointer shape the host should display. The engine computes
// it from hit-testing; the host owns the actual cursor resource.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorMove
	CursorText
	CursorNotAllowed
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeNS
	CursorResizeEW
)

// cursorForHandle maps a boundary handle to its resize cursor.
func cursorForHandle(k HandleKind) Cursor {
	switch k {
	case HandleTopLeft, HandleBottomRight:
		return CursorResizeNWSE
	case HandleTopRight, HandleBottomLeft:
		return CursorResizeNESW
	case HandleTopCenter, HandleBottomCenter:
		return CursorResizeNS
	case HandleMiddleLeft, HandleMiddleRight:
		return CursorResizeEW
	case HandleArrowStart, HandleArrowEnd:
		return CursorMove
	default:
		return CursorDefault
	}
}

// ViewportProvider exposes the current render target size in pixels.
// Implementations belong to the host; the engine reads the size on every
// coordinate conversion and never caches it.
type ViewportProvider interface {
	ViewportSize() (width, height float64)
}

// ExportSink receives the final committed element collection and the crop
// region on a complete/save command. The encoding is the sink's business.
type ExportSink interface {
	Export(elements []Element, crop Rect) error
}
