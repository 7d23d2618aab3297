// Package screen is the full-screen tcell backend
// It is both the intent source and the view of the game loop.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-reversi/board"
	"github.com/lixenwraith/vi-reversi/game"
	"github.com/lixenwraith/vi-reversi/input"
	"github.com/lixenwraith/vi-reversi/render"
	"github.com/lixenwraith/vi-reversi/terminal"
)

// cellWidth is the horizontal pitch of one board cell: glyph plus gap
const cellWidth = 2

// Screen draws the board with tcell and reads keys through a KeyTable
type Screen struct {
	scr      tcell.Screen
	keys     *input.KeyTable
	renderer *render.Renderer
	active   bool
}

// New opens the controlling terminal as a tcell screen
func New(keys *input.KeyTable, r *render.Renderer) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, &terminal.IOError{Op: "open", Err: err}
	}
	return NewWithScreen(scr, keys, r), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen
func NewWithScreen(scr tcell.Screen, keys *input.KeyTable, r *render.Renderer) *Screen {
	return &Screen{scr: scr, keys: keys, renderer: r}
}

// Init enters full-screen mode
func (s *Screen) Init() error {
	if err := s.scr.Init(); err != nil {
		return &terminal.IOError{Op: "init", Err: err}
	}
	s.scr.HideCursor()
	s.scr.Clear()
	s.active = true
	return nil
}

// Fini restores the terminal, safe to call more than once
func (s *Screen) Fini() {
	if !s.active {
		return
	}
	s.active = false
	s.scr.Fini()
}

// Next blocks for one event and maps it to an intent
// Resizes resolve to IntentNone so the loop redraws at the new size.
func (s *Screen) Next() (input.Intent, error) {
	switch ev := s.scr.PollEvent().(type) {
	case nil:
		// Screen finalized
		return s.keys.Resolve(terminal.Event{Type: terminal.EventClosed}), nil
	case *tcell.EventKey:
		return s.keys.Resolve(convertKey(ev)), nil
	case *tcell.EventResize:
		s.scr.Sync()
		return input.IntentNone, nil
	case *tcell.EventError:
		return input.IntentNone, &terminal.IOError{Op: "read", Err: ev}
	default:
		return input.IntentNone, nil
	}
}

// Draw renders the board and optional turn line
func (s *Screen) Draw(st *game.State) error {
	if !s.active {
		return &terminal.IOError{Op: "draw", Err: terminal.ErrNotTerminal}
	}

	s.scr.Clear()
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			p := board.Pos{Row: row, Col: col}
			c := st.Board.At(p)
			s.setString(col*cellWidth, row, s.renderer.Glyph(c), render.Style(c, p == st.Cursor))
		}
	}
	if s.renderer.ShowTurn {
		s.setString(0, board.Size, st.Turn.String(), render.StatusStyle())
	}
	s.scr.Show()
	return nil
}

// setString writes text left to right, one rune per column
func (s *Screen) setString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.scr.SetContent(x, y, r, nil, style)
		x++
	}
}
