package status

import (
	"sync"
	"testing"
)

func TestRegistryIntIsShared(t *testing.T) {
	r := NewRegistry()
	a := r.Int("engine.ticks")
	b := r.Int("engine.ticks")
	if a != b {
		t.Fatal("same name returned different counters")
	}
	a.Add(3)
	if got := r.Snapshot()["engine.ticks"]; got != 3 {
		t.Errorf("snapshot = %d, want 3", got)
	}
}

func TestRegistryConcurrentCreate(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.Int("game.contacts").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Int("game.contacts").Load(); got != 800 {
		t.Errorf("counter = %d, want 800", got)
	}
}

func TestRegistryResetAndNames(t *testing.T) {
	r := NewRegistry()
	c := r.Int("render.pixels")
	r.Int("engine.frames").Add(2)
	c.Add(10)
	r.Reset()

	if c.Load() != 0 || r.Int("engine.frames").Load() != 0 {
		t.Error("Reset left a counter non-zero")
	}
	names := r.Names()
	if len(names) != 2 || names[0] != "engine.frames" || names[1] != "render.pixels" {
		t.Errorf("Names = %v", names)
	}
}
