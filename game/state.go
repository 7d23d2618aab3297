// @focus: #game { state, loop }
package game

import (
	"github.com/lixenwraith/vi-reversi/board"
	"github.com/lixenwraith/vi-reversi/input"
)

// Turn is whose move is next
type Turn uint8

const (
	BlackToMove Turn = iota
	WhiteToMove
)

// Color returns the stone color placed on this turn
func (t Turn) Color() board.Cell {
	if t == WhiteToMove {
		return board.White
	}
	return board.Black
}

// Next returns the other player's turn
func (t Turn) Next() Turn {
	if t == WhiteToMove {
		return BlackToMove
	}
	return WhiteToMove
}

func (t Turn) String() string {
	return t.Color().String() + " to move"
}

// Phase is the loop state machine: Running until a quit intent, then Terminated
type Phase uint8

const (
	Running Phase = iota
	Terminated
)

// InitialCursor is where the cursor starts
var InitialCursor = board.Pos{Row: 4, Col: 4}

// State owns everything one game mutates
type State struct {
	Board  *board.Board
	Cursor board.Pos
	Turn   Turn
	Phase  Phase
}

// New returns the opening position, cursor at (4,4), Black to move
func New() *State {
	return &State{
		Board:  board.New(),
		Cursor: InitialCursor,
		Turn:   BlackToMove,
		Phase:  Running,
	}
}

// Outcome reports what a single intent did
type Outcome struct {
	Moved     bool          // Cursor position changed
	Placement *board.Result // Non-nil for a confirm intent
	Quit      bool
}

// Handle applies one intent. It never fails: every intent is either a
// transition or a no-op, and nothing happens once the state is Terminated.
func (s *State) Handle(intent input.Intent) Outcome {
	if s.Phase == Terminated {
		return Outcome{}
	}

	last := board.Size - 1
	before := s.Cursor

	switch intent {
	case input.IntentUp:
		s.Cursor.Row = max(s.Cursor.Row-1, 0)
	case input.IntentDown:
		s.Cursor.Row = min(s.Cursor.Row+1, last)
	case input.IntentLeft:
		s.Cursor.Col = max(s.Cursor.Col-1, 0)
	case input.IntentRight:
		s.Cursor.Col = min(s.Cursor.Col+1, last)
	case input.IntentConfirm:
		res := s.Board.Place(s.Cursor, s.Turn.Color())
		if res.Accepted {
			s.Turn = s.Turn.Next()
		}
		return Outcome{Placement: &res}
	case input.IntentQuit:
		s.Phase = Terminated
		return Outcome{Quit: true}
	default:
		return Outcome{}
	}

	return Outcome{Moved: s.Cursor != before}
}
