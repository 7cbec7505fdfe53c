package audio

import "time"

// DefaultClockHz is the timer clock the buzzer periods are expressed in
const DefaultClockHz = 2_000_000

// Buzzer is the audio cue contract
// Periods are timer cycles of the buzzer clock; zero silences
type Buzzer interface {
	// SetPeriod holds a continuous tone until changed
	SetPeriod(cycles int)
	// Chirp plays a one-shot tone over the continuous one
	Chirp(cycles int, d time.Duration)
}

// PeriodToFrequency converts buzzer cycles to Hz, zero for silence
func PeriodToFrequency(clockHz, cycles int) float64 {
	if cycles <= 0 || clockHz <= 0 {
		return 0
	}
	return float64(clockHz) / float64(cycles)
}

// Silent is a Buzzer that makes no sound, used when audio is muted or unavailable
type Silent struct{}

func (Silent) SetPeriod(int)            {}
func (Silent) Chirp(int, time.Duration) {}
