package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shape-motion/core"
)

// Ticker is the periodic motion step
type Ticker interface {
	Tick()
}

// ClockScheduler runs the tick task on a fixed interval of game time
// Deadlines advance by whole intervals so ticks do not drift; a scheduler
// that falls far behind resynchronizes instead of bursting
type ClockScheduler struct {
	ticker       Ticker
	clock        *PausableClock
	tickInterval time.Duration

	mu               sync.Mutex
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler calling t every tickInterval of clock time
func NewClockScheduler(t Ticker, clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		ticker:       t,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs one tick synchronously
func (cs *ClockScheduler) Step() {
	cs.ticker.Tick()
	cs.tickCount.Add(1)
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.Step()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()
			}
			sleepDuration = max(deadline.Sub(cs.clock.Now()), 0)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
