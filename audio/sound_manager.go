package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager drives the speaker as a Buzzer
// One long-lived square generator carries the continuous tone; chirps are
// short generators mixed on top
type SoundManager struct {
	mu          sync.Mutex
	clockHz     int
	period      int
	tone        *SquareGenerator
	toneCtrl    *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager for a buzzer clock of clockHz
func NewSoundManager(clockHz int) *SoundManager {
	if clockHz <= 0 {
		clockHz = DefaultClockHz
	}
	return &SoundManager{
		clockHz: clockHz,
		tone:    NewSquareGenerator(sampleRate, 0),
		mixer:   &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.toneCtrl = &beep.Ctrl{Streamer: sm.tone, Paused: false}
	speaker.Lock()
	sm.mixer.Add(sm.toneCtrl)
	speaker.Unlock()

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.toneCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetPeriod retunes the continuous tone; repeated calls with the same period are free
func (sm *SoundManager) SetPeriod(cycles int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if cycles < 0 {
		cycles = 0
	}
	if cycles == sm.period {
		return
	}
	sm.period = cycles
	sm.tone.SetFrequency(PeriodToFrequency(sm.clockHz, cycles))
}

// Period returns the last period set
func (sm *SoundManager) Period() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.period
}

// Chirp plays a short square tone
func (sm *SoundManager) Chirp(cycles int, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	freq := PeriodToFrequency(sm.clockHz, cycles)
	if !sm.initialized || freq == 0 || d <= 0 {
		return
	}

	streamer := beep.Take(sampleRate.N(d), NewSquareGenerator(sampleRate, freq))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
