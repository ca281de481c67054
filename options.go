package annotate

import "github.com/gogpu/annotate/text"

// EditorOption configures an Editor during creation.
//
// Example:
//
//	// Defaults
//	ed := annotate.NewEditor(viewport)
//
//	// Custom handle size and an exact text measurer
//	ed := annotate.NewEditor(viewport,
//	    annotate.WithHandleSize(16),
//	    annotate.WithMeasurer(shaper))
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	handleSize   float64
	minBoxSize   float64
	historyDepth int
	thresholds   Thresholds
	style        Style
	flush        FlushPolicy
	measurer     text.Measurer
	sink         ExportSink
}

// defaultEditorOptions returns the stock configuration.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		handleSize:   DefaultHandleSize,
		minBoxSize:   MinBoxSize,
		historyDepth: DefaultHistoryDepth,
		thresholds:   DefaultThresholds(),
		style:        DefaultStyle(),
		flush:        DefaultFlushPolicy(),
		measurer:     text.DefaultMetrics(),
	}
}

// WithHandleSize sets the diameter of manipulation handles in pixels.
func WithHandleSize(size float64) EditorOption {
	return func(o *editorOptions) {
		if size > 0 {
			o.handleSize = size
		}
	}
}

// WithMinBoxSize sets the minimum crop region extent on both axes.
func WithMinBoxSize(size float64) EditorOption {
	return func(o *editorOptions) {
		if size > 0 {
			o.minBoxSize = size
		}
	}
}

// WithHistoryDepth caps the undo stack depth.
func WithHistoryDepth(depth int) EditorOption {
	return func(o *editorOptions) {
		if depth > 0 {
			o.historyDepth = depth
		}
	}
}

// WithThresholds replaces the per-variant size limits.
func WithThresholds(th Thresholds) EditorOption {
	return func(o *editorOptions) {
		o.thresholds = th
	}
}

// WithStyle sets the defaults applied to newly created elements.
func WithStyle(st Style) EditorOption {
	return func(o *editorOptions) {
		o.style = st
	}
}

// WithFlushPolicy replaces the redraw throttle intervals.
func WithFlushPolicy(fp FlushPolicy) EditorOption {
	return func(o *editorOptions) {
		o.flush = fp
	}
}

// WithMeasurer injects a text measurer, typically a *text.Shaper for exact
// glyph metrics. The default is the metrics-based estimate.
func WithMeasurer(m text.Measurer) EditorOption {
	return func(o *editorOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithExportSink sets the destination for Complete.
func WithExportSink(sink ExportSink) EditorOption {
	return func(o *editorOptions) {
		o.sink = sink
	}
}
