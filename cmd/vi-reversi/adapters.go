package main

import (
	"github.com/lixenwraith/vi-reversi/game"
	"github.com/lixenwraith/vi-reversi/input"
	"github.com/lixenwraith/vi-reversi/render"
	"github.com/lixenwraith/vi-reversi/terminal"
)

// termSource reads raw terminal events and resolves them through the key table
type termSource struct {
	term terminal.Terminal
	keys *input.KeyTable
}

func (s *termSource) Next() (input.Intent, error) {
	ev := s.term.PollEvent()
	if ev.Type == terminal.EventError {
		return input.IntentNone, ev.Err
	}
	return s.keys.Resolve(ev), nil
}

// ansiView clears and repaints the whole board each frame
type ansiView struct {
	term     terminal.Terminal
	renderer *render.Renderer
}

func (v *ansiView) Draw(s *game.State) error {
	return v.term.Present(v.renderer.Screen(s.Board, s.Cursor, s.Turn.Color()))
}
