package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/shape-motion/core"
)

// Keypad turns terminal key presses into held-button state
// Terminals report presses and auto-repeats but no releases, so a press holds
// its button for a fixed window that each repeat extends
type Keypad struct {
	mu    sync.Mutex
	clock core.Clock
	hold  time.Duration
	until [4]time.Time
}

// NewKeypad creates a keypad whose presses last hold
func NewKeypad(clock core.Clock, hold time.Duration) *Keypad {
	return &Keypad{clock: clock, hold: hold}
}

// Press marks every button in b as held from now
func (k *Keypad) Press(b Buttons) {
	k.mu.Lock()
	defer k.mu.Unlock()

	deadline := k.clock.Now().Add(k.hold)
	for i := range k.until {
		if b&(1<<i) != 0 {
			k.until[i] = deadline
		}
	}
}

// Release drops every held button
func (k *Keypad) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.until = [4]time.Time{}
}

// ReadButtons returns the buttons whose hold window has not expired
func (k *Keypad) ReadButtons() Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	var b Buttons
	for i, t := range k.until {
		if now.Before(t) {
			b |= 1 << i
		}
	}
	return b
}
