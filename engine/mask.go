package engine

import "sync"

// Mask is the critical section between the tick task and the redraw task
// The tick task holds it for a whole tick; the redraw task holds it only to
// commit pending positions. It satisfies sync.Locker for the compositor.
type Mask struct {
	mu sync.Mutex
}

func (m *Mask) Lock() {
	m.mu.Lock()
}

func (m *Mask) Unlock() {
	m.mu.Unlock()
}

// Do runs fn with the mask held
func (m *Mask) Do(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn()
}
