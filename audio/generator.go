package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// squareAmplitude keeps the piezo-style tone below clipping when mixed
const squareAmplitude = 0.12

// SquareGenerator streams a square wave whose frequency can change while playing
// A frequency of zero streams silence
type SquareGenerator struct {
	sr    beep.SampleRate
	freq  atomic.Uint64 // float64 bits, written by the game, read by the speaker goroutine
	phase float64
}

// NewSquareGenerator creates a generator at freq Hz
func NewSquareGenerator(sr beep.SampleRate, freq float64) *SquareGenerator {
	g := &SquareGenerator{sr: sr}
	g.SetFrequency(freq)
	return g
}

// SetFrequency retunes the generator, zero or negative silences it
func (g *SquareGenerator) SetFrequency(freq float64) {
	g.freq.Store(math.Float64bits(max(freq, 0)))
}

// Frequency returns the current frequency in Hz
func (g *SquareGenerator) Frequency() float64 {
	return math.Float64frombits(g.freq.Load())
}

func (g *SquareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := g.Frequency()
	if freq <= 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	phaseInc := freq / float64(g.sr)
	for i := range samples {
		sample := squareAmplitude
		if g.phase >= 0.5 {
			sample = -squareAmplitude
		}
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += phaseInc
		if g.phase >= 1.0 {
			g.phase -= math.Floor(g.phase)
		}
	}
	return len(samples), true
}

func (g *SquareGenerator) Err() error {
	return nil
}
