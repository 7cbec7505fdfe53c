package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shape-motion/core"
)

// PausableClock is game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	wall      core.Clock
	start     time.Time
	paused    atomic.Bool
	pausedAt  time.Time
	pausedFor time.Duration
}

// NewPausableClock creates a running clock over the given wall time source
func NewPausableClock(wall core.Clock) *PausableClock {
	if wall == nil {
		wall = core.NewTimeProvider()
	}
	return &PausableClock{
		wall:  wall,
		start: wall.Now(),
	}
}

// Now returns game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused.Load() {
		return pc.pausedAt.Add(-pc.pausedFor)
	}
	return pc.wall.Now().Add(-pc.pausedFor)
}

// Pause stops game time
func (pc *PausableClock) Pause() {
	if pc.paused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pausedAt = pc.wall.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time from where it stopped
func (pc *PausableClock) Resume() {
	if pc.paused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.pausedFor += pc.wall.Now().Sub(pc.pausedAt)
		pc.pausedAt = time.Time{}
		pc.mu.Unlock()
	}
}

// Toggle flips the pause state and returns the new one
func (pc *PausableClock) Toggle() bool {
	if pc.paused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	return pc.paused.Load()
}

// PausedFor returns cumulative pause time including a pause in progress
func (pc *PausableClock) PausedFor() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedFor
	if pc.paused.Load() && !pc.pausedAt.IsZero() {
		total += pc.wall.Now().Sub(pc.pausedAt)
	}
	return total
}
