package kernel

import (
	"time"

	"tacoshare/internal/pkg/errs"
)

// Domain errors for time window construction.
var (
	// ErrTimeWindowStartIsRequired is returned when the window has no start time.
	ErrTimeWindowStartIsRequired = errs.NewValueIsRequiredError("window start")
	// ErrTimeWindowEndIsRequired is returned when the window has no end time.
	ErrTimeWindowEndIsRequired = errs.NewValueIsRequiredError("window end")
	// ErrTimeWindowEndBeforeStart is returned when the window would be empty or inverted.
	ErrTimeWindowEndBeforeStart = errs.NewValueIsInvalidError("window end must be after start")
)

// TimeWindow is the open interval during which a group order accepts
// participant submissions. It is a value object: immutable once constructed.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow creates a validated window. The end must be strictly after the start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, ErrTimeWindowStartIsRequired
	}
	if end.IsZero() {
		return TimeWindow{}, ErrTimeWindowEndIsRequired
	}
	if !end.After(start) {
		return TimeWindow{}, ErrTimeWindowEndBeforeStart
	}
	return TimeWindow{start: start, end: end}, nil
}

// Start returns the opening time of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the closing time of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Contains reports whether t falls inside the window (start inclusive, end exclusive).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// Validate returns an error for the zero value, which never passes construction.
func (w TimeWindow) Validate() error {
	if w.start.IsZero() || w.end.IsZero() {
		return errs.NewValueIsRequiredError("time window must be created via NewTimeWindow")
	}
	return nil
}
