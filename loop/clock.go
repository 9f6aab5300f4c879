// Package loop implements the fixed-timestep deterministic game loop:
// input polling, physics stepping, and frame rendering each run on their
// own period, with physics catching up via a fixed-size accumulator and
// the rendered frame interpolated between the two most recent physics
// states.
//
// Grounded line-for-line on
// original_source/src/infiniworld/controllers/loop.py's GameLoopController.
package loop

import "time"

// Clock reads wall-clock time. A single-threaded, non-concurrent
// simplification of the donor's engine/pausable_clock.go: this package's
// loop is the only goroutine ever touching it, so there is no mutex or
// atomic state to guard, and pausing is handled by the loop itself (it
// simply stops accumulating physics time) rather than by the clock.
type Clock struct {
	now func() time.Time
}

// NewClock returns a Clock backed by time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Now() time.Time { return c.now() }
