package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-reversi/board"
)

const (
	sampleRate = beep.SampleRate(48000)

	placeBaseHz   = 660.0
	placeDuration = 60 * time.Millisecond
	rejectHz      = 140.0
	rejectDur     = 120 * time.Millisecond

	// maxPitchSteps caps the rise so large captures stay audible
	maxPitchSteps = 12
)

// SoundManager plays short placement tones
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Placed plays a blip that rises in pitch with the number of captured stones
func (sm *SoundManager) Placed(c board.Cell, flipped int) {
	sm.play(placeFrequency(flipped), placeDuration)
}

// Rejected plays a low buzz for a placement on an occupied cell
func (sm *SoundManager) Rejected() {
	sm.play(rejectHz, rejectDur)
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		sm.log.Warn().Err(err).Float64("freq", freq).Msg("tone generation failed")
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), tone))
	speaker.Unlock()
}

// placeFrequency maps a flip count to a pitch, one semitone per captured stone
func placeFrequency(flipped int) float64 {
	steps := min(max(flipped, 0), maxPitchSteps)
	return placeBaseHz * math.Pow(2, float64(steps)/12)
}
