package core

import (
	"sync/atomic"
	"time"
)

// ManualClock is a Clock that only moves when told to
// Safe for a test goroutine to drive while the code under test reads it
type ManualClock struct {
	epoch   time.Time
	elapsed atomic.Int64
}

// NewManualClock creates a clock reading epoch
func NewManualClock(epoch time.Time) *ManualClock {
	return &ManualClock{epoch: epoch}
}

func (c *ManualClock) Now() time.Time {
	return c.epoch.Add(c.Elapsed())
}

// Elapsed returns how far the clock has moved from its epoch
func (c *ManualClock) Elapsed() time.Duration {
	return time.Duration(c.elapsed.Load())
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.elapsed.Add(int64(d))
}

// Set jumps the clock to t, which may be before the current reading
func (c *ManualClock) Set(t time.Time) {
	c.elapsed.Store(int64(t.Sub(c.epoch)))
}
