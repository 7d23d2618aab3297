package audio

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-reversi/board"
)

func TestPlaceFrequency(t *testing.T) {
	assert.Equal(t, placeBaseHz, placeFrequency(0))
	assert.Equal(t, placeBaseHz, placeFrequency(-3))
	assert.InDelta(t, placeBaseHz*2, placeFrequency(12), 1e-9)

	prev := placeFrequency(0)
	for n := 1; n <= maxPitchSteps; n++ {
		f := placeFrequency(n)
		assert.Greater(t, f, prev, "flips %d", n)
		prev = f
	}

	// Capped
	assert.Equal(t, placeFrequency(maxPitchSteps), placeFrequency(40))
}

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(zerolog.Nop())

	// Must not touch the speaker before Initialize
	assert.NotPanics(t, func() {
		sm.Placed(board.Black, 3)
		sm.Rejected()
		sm.Cleanup()
	})
	assert.Equal(t, 0, sm.mixer.Len())
}
