package starfield

import "time"

// DebounceInterval is how long the viewport must hold a size before the
// projection is rebuilt for it.
const DebounceInterval = 250 * time.Millisecond

// Debouncer collapses a burst of triggers into a single ready signal once
// the burst has been quiet for the interval. It is polled rather than
// timer-driven so it can run inside a frame callback.
type Debouncer struct {
	interval time.Duration
	now      func() time.Time

	deadline time.Time
	pending  bool
}

// NewDebouncer returns a debouncer over the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval, now: time.Now}
}

// Trigger records an event and pushes the deadline out by the interval.
func (d *Debouncer) Trigger() {
	d.pending = true
	d.deadline = d.now().Add(d.interval)
}

// Ready reports whether a triggered burst has gone quiet. It returns true
// exactly once per burst.
func (d *Debouncer) Ready() bool {
	if !d.pending || d.now().Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
