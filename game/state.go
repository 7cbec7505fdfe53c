package game

import "fmt"

// Outcome is the coarse phase of a run
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Playing"
	}
}

// LostThreshold is the life counter value that ends the run
const LostThreshold = 3

// State is the life counter state machine
// Playing(0..2) moves to Playing(n+1) on contact, Playing(2) to Lost, any Playing to Won
// Not synchronized; the owner serializes access
type State struct {
	lives   int
	outcome Outcome
}

// NewState returns Playing(0)
func NewState() *State {
	return &State{}
}

// Lives returns the life counter, 0 is full health
func (s *State) Lives() int {
	return s.lives
}

// Remaining returns lives left for display
func (s *State) Remaining() int {
	return max(LostThreshold-s.lives, 0)
}

// Outcome returns the current phase
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Terminal reports Won or Lost
func (s *State) Terminal() bool {
	return s.outcome != Playing
}

// Hit records a paddle contact
// Returns false without mutation once terminal
func (s *State) Hit() bool {
	if s.Terminal() {
		return false
	}
	s.lives++
	if s.lives >= LostThreshold {
		s.outcome = Lost
	}
	return true
}

// Win records the ball clearing the top fence edge
// Returns false without mutation once terminal
func (s *State) Win() bool {
	if s.Terminal() {
		return false
	}
	s.outcome = Won
	return true
}

// Reset returns to Playing(0)
func (s *State) Reset() {
	s.lives = 0
	s.outcome = Playing
}

func (s *State) String() string {
	if s.outcome == Playing {
		return fmt.Sprintf("Playing(%d)", s.lives)
	}
	return s.outcome.String()
}
