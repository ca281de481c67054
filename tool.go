package annotate

// Tool identifies the active drawing tool. Selecting a committed element
// switches the active tool to match the element's kind, so subsequent
// edits use matching defaults.
type Tool int

const (
	// ToolNone means no drawing tool is active; pointer events edit the
	// crop region instead of creating elements.
	ToolNone Tool = iota
	ToolRectangle
	ToolEllipse
	ToolArrow
	ToolFreehand
	ToolText
)

// String returns the tool name for logging.
func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "none"
	case ToolRectangle:
		return "rectangle"
	case ToolEllipse:
		return "ellipse"
	case ToolArrow:
		return "arrow"
	case ToolFreehand:
		return "freehand"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// IsDrawing returns true if the tool creates elements.
func (t Tool) IsDrawing() bool {
	return t != ToolNone
}
