// Package status holds named run counters
// Hot paths cache the counter pointers once and update the atomics directly
package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Registry is the central counter facade
type Registry struct {
	mu   sync.RWMutex
	ints map[string]*atomic.Int64
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{ints: make(map[string]*atomic.Int64)}
}

// Int returns the named counter, creating it on first use
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.ints[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.ints[name]; ok {
		return c
	}
	c = &atomic.Int64{}
	r.ints[name] = c
	return c
}

// Names returns the registered counter names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.ints))
}

// Snapshot copies every counter's current value
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.ints))
	for name, c := range r.ints {
		out[name] = c.Load()
	}
	return out
}

// Reset zeroes every counter, keeping cached pointers valid
func (r *Registry) Reset() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.ints {
		c.Store(0)
	}
}
