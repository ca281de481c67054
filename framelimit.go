package annotate

import "time"

// FlushMode distinguishes the redraw-throttle thresholds. Dragging uses a
// tighter interval so live feedback stays smooth; idle pointer motion is
// flushed less often.
type FlushMode int

const (
	FlushIdle FlushMode = iota
	FlushDragging
)

// Default flush intervals, matching the editor's historical frame limits
// (14ms while dragging, 33ms idle).
const (
	DefaultDragFlushInterval = 14 * time.Millisecond
	DefaultIdleFlushInterval = 33 * time.Millisecond
)

// FlushPolicy decides when pointer-driven mutations should be flushed to
// the screen. It is a presentation-layer throttle only: callers apply state
// mutations unconditionally and consult the policy just to set the redraw
// flag, so no input is ever dropped, only its visual flush deferred.
type FlushPolicy struct {
	DragInterval time.Duration
	IdleInterval time.Duration
}

// DefaultFlushPolicy returns the policy with the default intervals.
func DefaultFlushPolicy() FlushPolicy {
	return FlushPolicy{
		DragInterval: DefaultDragFlushInterval,
		IdleInterval: DefaultIdleFlushInterval,
	}
}

// ShouldFlush reports whether enough wall-clock time has passed since the
// last flush for the given mode. A zero lastFlush always flushes.
func (f FlushPolicy) ShouldFlush(now, lastFlush time.Time, mode FlushMode) bool {
	if lastFlush.IsZero() {
		return true
	}
	interval := f.IdleInterval
	if mode == FlushDragging {
		interval = f.DragInterval
	}
	return now.Sub(lastFlush) >= interval
}
