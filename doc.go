// Package annotate provides the interactive editing engine for a
// screen-overlay annotation editor.
//
// # Overview
//
// annotate is a pure Go engine for the GoGPU ecosystem. It models the state
// of a capture-and-annotate session: the user first drags out a crop region
// over a full-screen snapshot, then draws vector shapes (rectangle, ellipse,
// arrow, freehand, text) on top of it, with direct-manipulation editing
// (move, resize, undo/redo) before handing the result to an export sink.
//
// # Quick Start
//
//	import "github.com/gogpu/annotate"
//
//	ed := annotate.NewEditor(viewport)
//
//	// Feed host events in the order they were observed.
//	ed.PointerPressed(annotate.Pt(100, 100))
//	ed.PointerMoved(annotate.Pt(400, 300))
//	ed.PointerReleased(annotate.Pt(400, 300))
//
//	// Consume render state when the host asks for a redraw.
//	if ed.TakeRedraw(time.Now()) {
//	    frame := ed.Frame()
//	    // hand frame.Segments and frame.Handles to the renderer
//	}
//
// # Architecture
//
// The engine is split into small controllers communicating through the
// Editor facade:
//   - CropController: lifecycle of the single capture rectangle
//   - ElementStore: committed elements plus at most one in-progress element
//   - SelectionController: handles, hit-testing, handle-driven transforms
//   - History: capped undo/redo stacks of full element snapshots
//   - GeometryCache: fingerprint-validated line-segment tessellations
//   - CoordinateMapper: screen pixels <-> normalized device coordinates
//
// The engine is single-threaded and event-driven: every call mutates state
// synchronously and sets a needs-redraw flag for the host to consume. It
// never touches windowing, capture, or GPU APIs; those live behind the
// boundary interfaces in this package and in annotate/text.
//
// # Coordinate System
//
// Screen-pixel coordinates with the origin at the top-left, X increasing
// right and Y increasing down. Normalized device coordinates follow the
// usual GPU convention with Y up.
package annotate

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
