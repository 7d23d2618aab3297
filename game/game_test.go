package game

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-reversi/board"
	"github.com/lixenwraith/vi-reversi/input"
)

// scriptSource replays intents, then fails if read past the end
type scriptSource struct {
	intents []input.Intent
	reads   int
}

var errExhausted = errors.New("script exhausted")

func (s *scriptSource) Next() (input.Intent, error) {
	if s.reads >= len(s.intents) {
		return input.IntentNone, errExhausted
	}
	i := s.intents[s.reads]
	s.reads++
	return i, nil
}

// recordView snapshots every drawn state
type recordView struct {
	draws   []State
	failAt  int
	failErr error
}

func (v *recordView) Draw(s *State) error {
	if v.failErr != nil && len(v.draws) == v.failAt {
		return v.failErr
	}
	snap := *s
	b := *s.Board
	snap.Board = &b
	v.draws = append(v.draws, snap)
	return nil
}

type recordFeedback struct {
	placed   []int
	colors   []board.Cell
	rejected int
}

func (f *recordFeedback) Placed(c board.Cell, flipped int) {
	f.colors = append(f.colors, c)
	f.placed = append(f.placed, flipped)
}
func (f *recordFeedback) Rejected() { f.rejected++ }

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, board.Pos{Row: 4, Col: 4}, s.Cursor)
	assert.Equal(t, BlackToMove, s.Turn)
	assert.Equal(t, Running, s.Phase)
	assert.Equal(t, board.New().Rows(), s.Board.Rows())
}

func TestTurn(t *testing.T) {
	assert.Equal(t, board.Black, BlackToMove.Color())
	assert.Equal(t, board.White, WhiteToMove.Color())
	assert.Equal(t, WhiteToMove, BlackToMove.Next())
	assert.Equal(t, BlackToMove, WhiteToMove.Next())
	assert.Equal(t, "White to move", WhiteToMove.String())
}

func TestHandleMovementClamps(t *testing.T) {
	tests := []struct {
		name   string
		start  board.Pos
		intent input.Intent
		want   board.Pos
		moved  bool
	}{
		{"up", board.Pos{Row: 4, Col: 4}, input.IntentUp, board.Pos{Row: 3, Col: 4}, true},
		{"down", board.Pos{Row: 4, Col: 4}, input.IntentDown, board.Pos{Row: 5, Col: 4}, true},
		{"left", board.Pos{Row: 4, Col: 4}, input.IntentLeft, board.Pos{Row: 4, Col: 3}, true},
		{"right", board.Pos{Row: 4, Col: 4}, input.IntentRight, board.Pos{Row: 4, Col: 5}, true},
		{"up at top", board.Pos{Row: 0, Col: 2}, input.IntentUp, board.Pos{Row: 0, Col: 2}, false},
		{"down at bottom", board.Pos{Row: 7, Col: 2}, input.IntentDown, board.Pos{Row: 7, Col: 2}, false},
		{"left at edge", board.Pos{Row: 2, Col: 0}, input.IntentLeft, board.Pos{Row: 2, Col: 0}, false},
		{"right at edge", board.Pos{Row: 2, Col: 7}, input.IntentRight, board.Pos{Row: 2, Col: 7}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Cursor = tt.start
			out := s.Handle(tt.intent)
			assert.Equal(t, tt.want, s.Cursor)
			assert.Equal(t, tt.moved, out.Moved)
			assert.Nil(t, out.Placement)
		})
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	motions := []input.Intent{input.IntentUp, input.IntentDown, input.IntentLeft, input.IntentRight}

	s := New()
	for i := 0; i < 5000; i++ {
		s.Handle(motions[rng.Intn(len(motions))])
		require.True(t, s.Cursor.InBounds(), "step %d cursor %v", i, s.Cursor)
	}

	// Hammering one direction clamps, never wraps
	for i := 0; i < 20; i++ {
		s.Handle(input.IntentUp)
		s.Handle(input.IntentLeft)
	}
	assert.Equal(t, board.Pos{Row: 0, Col: 0}, s.Cursor)
	for i := 0; i < 20; i++ {
		s.Handle(input.IntentDown)
		s.Handle(input.IntentRight)
	}
	assert.Equal(t, board.Pos{Row: 7, Col: 7}, s.Cursor)
}

func TestHandleConfirmOpeningScenario(t *testing.T) {
	s := New()
	s.Handle(input.IntentUp)
	s.Handle(input.IntentUp)
	s.Handle(input.IntentLeft)
	require.Equal(t, board.Pos{Row: 2, Col: 3}, s.Cursor)

	out := s.Handle(input.IntentConfirm)

	require.NotNil(t, out.Placement)
	assert.True(t, out.Placement.Accepted)
	assert.Equal(t, []board.Pos{{Row: 3, Col: 3}}, out.Placement.Flipped)
	assert.Equal(t, board.Black, s.Board.At(board.Pos{Row: 2, Col: 3}))
	assert.Equal(t, board.Black, s.Board.At(board.Pos{Row: 3, Col: 3}))
	assert.Equal(t, board.Black, s.Board.At(board.Pos{Row: 3, Col: 4}))
	assert.Equal(t, board.Black, s.Board.At(board.Pos{Row: 4, Col: 3}))
	assert.Equal(t, board.White, s.Board.At(board.Pos{Row: 4, Col: 4}))
	assert.Equal(t, WhiteToMove, s.Turn)
}

func TestHandleConfirmOccupied(t *testing.T) {
	s := New()
	s.Cursor = board.Pos{Row: 3, Col: 3}
	before := s.Board.Rows()

	out := s.Handle(input.IntentConfirm)

	require.NotNil(t, out.Placement)
	assert.False(t, out.Placement.Accepted)
	assert.Equal(t, board.ReasonOccupied, out.Placement.Reason)
	assert.Equal(t, before, s.Board.Rows())
	assert.Equal(t, BlackToMove, s.Turn)
}

func TestTurnAlternatesOnlyOnAcceptedPlacement(t *testing.T) {
	s := New()
	accepted := 0

	// Walk the top row confirming twice per cell: first accepted, second occupied
	s.Cursor = board.Pos{Row: 0, Col: 0}
	for col := 0; col < board.Size; col++ {
		for i := 0; i < 2; i++ {
			turnBefore := s.Turn
			out := s.Handle(input.IntentConfirm)
			if out.Placement.Accepted {
				accepted++
				assert.Equal(t, turnBefore.Next(), s.Turn)
			} else {
				assert.Equal(t, turnBefore, s.Turn)
			}
		}
		s.Handle(input.IntentRight)
	}

	assert.Equal(t, board.Size, accepted)
	assert.Equal(t, BlackToMove, s.Turn)
	for col := 0; col < board.Size; col++ {
		assert.True(t, s.Board.At(board.Pos{Row: 0, Col: col}).IsStone())
	}
}

func TestHandleQuitAndUnknown(t *testing.T) {
	s := New()

	out := s.Handle(input.IntentNone)
	assert.Equal(t, Outcome{}, out)
	out = s.Handle(input.Intent(200))
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, Running, s.Phase)

	out = s.Handle(input.IntentQuit)
	assert.True(t, out.Quit)
	assert.Equal(t, Terminated, s.Phase)

	// Terminal state ignores everything
	s.Handle(input.IntentUp)
	s.Handle(input.IntentConfirm)
	assert.Equal(t, InitialCursor, s.Cursor)
	assert.Equal(t, board.New().Rows(), s.Board.Rows())
}

func TestRunMovesThenQuitDoesNotMutateBoard(t *testing.T) {
	src := &scriptSource{intents: []input.Intent{
		input.IntentUp, input.IntentUp, input.IntentLeft, input.IntentDown, input.IntentRight,
		input.IntentRight, input.IntentRight, input.IntentDown, input.IntentLeft, input.IntentUp,
		input.IntentQuit,
	}}
	view := &recordView{}
	s := New()

	require.NoError(t, Run(src, view, WithState(s)))

	assert.Equal(t, 11, src.reads)
	assert.Len(t, view.draws, 11)
	assert.Equal(t, Terminated, s.Phase)
	assert.Equal(t, board.New().Rows(), s.Board.Rows())
	assert.Equal(t, BlackToMove, s.Turn)
	for _, d := range view.draws {
		assert.Equal(t, board.New().Rows(), d.Board.Rows())
	}
}

func TestRunPlacementAndFeedback(t *testing.T) {
	src := &scriptSource{intents: []input.Intent{
		input.IntentUp, input.IntentUp, input.IntentLeft, input.IntentConfirm, // Black (2,3), flips 1
		input.IntentConfirm, // occupied, rejected
		input.IntentDown,    // (3,3)
		input.IntentConfirm, // occupied, rejected
		input.IntentQuit,
	}}
	view := &recordView{}
	fb := &recordFeedback{}
	s := New()

	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf).Level(zerolog.DebugLevel)

	require.NoError(t, Run(src, view, WithState(s), WithFeedback(fb), WithLogger(logger)))

	assert.Equal(t, []int{1}, fb.placed)
	assert.Equal(t, []board.Cell{board.Black}, fb.colors)
	assert.Equal(t, 2, fb.rejected)
	assert.Equal(t, WhiteToMove, s.Turn)

	// The draw after the confirm shows the placed stone
	require.GreaterOrEqual(t, len(view.draws), 5)
	assert.Equal(t, board.Black, view.draws[4].Board.At(board.Pos{Row: 2, Col: 3}))

	assert.Contains(t, logBuf.String(), "stone placed")
	assert.Contains(t, logBuf.String(), "placement rejected")
	assert.Contains(t, logBuf.String(), "game loop terminated")
}

func TestRunSourceError(t *testing.T) {
	src := &scriptSource{intents: []input.Intent{input.IntentUp}}
	err := Run(src, &recordView{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errExhausted)
}

func TestRunViewError(t *testing.T) {
	boom := errors.New("write failed")
	src := &scriptSource{intents: []input.Intent{input.IntentUp, input.IntentQuit}}
	view := &recordView{failAt: 1, failErr: boom}

	err := Run(src, view)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, src.reads)
}

func TestRunDefaultState(t *testing.T) {
	src := &scriptSource{intents: []input.Intent{input.IntentQuit}}
	view := &recordView{}

	require.NoError(t, Run(src, view))
	require.Len(t, view.draws, 1)
	assert.Equal(t, InitialCursor, view.draws[0].Cursor)
}
