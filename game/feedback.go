package game

// Feedback receives the side effects of a tick
// Implementations run inside the tick task and must not block
type Feedback interface {
	// Contact fires after the life counter moved
	Contact(s *State)
	// Won fires once when the ball clears the top fence edge
	Won()
	// Lost fires once when the counter reaches LostThreshold
	Lost()
	// FenceTone turns the proximity tone on or off, called every tick
	FenceTone(on bool)
}

// NopFeedback discards every side effect
type NopFeedback struct{}

func (NopFeedback) Contact(*State) {}
func (NopFeedback) Won()           {}
func (NopFeedback) Lost()          {}
func (NopFeedback) FenceTone(bool) {}
