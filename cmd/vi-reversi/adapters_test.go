package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-reversi/game"
	"github.com/lixenwraith/vi-reversi/input"
	"github.com/lixenwraith/vi-reversi/render"
	"github.com/lixenwraith/vi-reversi/terminal"
)

// fakeTerm replays events and records presented frames
type fakeTerm struct {
	events   []terminal.Event
	frames   []string
	writeErr error
}

func (f *fakeTerm) Init() error      { return nil }
func (f *fakeTerm) Fini()            {}
func (f *fakeTerm) Size() (int, int) { return 80, 24 }
func (f *fakeTerm) PollEvent() terminal.Event {
	if len(f.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}
func (f *fakeTerm) Present(frame string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, frame)
	return nil
}

func runeKey(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func newAdapters(t *testing.T, ft *fakeTerm) (*termSource, *ansiView) {
	t.Helper()
	kt, err := input.Preset(input.PresetIJKL)
	require.NoError(t, err)
	g, err := render.Glyphs(render.GlyphsASCII)
	require.NoError(t, err)
	return &termSource{term: ft, keys: kt}, &ansiView{term: ft, renderer: render.New(g)}
}

func TestAdapters_PlayOpeningMove(t *testing.T) {
	ft := &fakeTerm{events: []terminal.Event{
		runeKey('i'), runeKey('i'), runeKey('j'),
		{Type: terminal.EventKey, Key: terminal.KeyEnter},
		runeKey('q'),
	}}
	src, view := newAdapters(t, ft)

	require.NoError(t, game.Run(src, view))

	require.Len(t, ft.frames, 5)
	last := strings.Split(ft.frames[4], "\r\n")
	assert.Equal(t, ". . . B . . . . ", stripSGR(last[2]))
	assert.Equal(t, ". . . B B . . . ", stripSGR(last[3]))
}

func TestAdapters_ClosedInputQuits(t *testing.T) {
	ft := &fakeTerm{events: []terminal.Event{runeKey('k')}}
	src, view := newAdapters(t, ft)

	require.NoError(t, game.Run(src, view))
	assert.Len(t, ft.frames, 2)
}

func TestAdapters_ErrorsPropagate(t *testing.T) {
	readErr := &terminal.IOError{Op: "read", Err: errors.New("EIO")}
	ft := &fakeTerm{events: []terminal.Event{{Type: terminal.EventError, Err: readErr}}}
	src, view := newAdapters(t, ft)

	err := game.Run(src, view)
	require.Error(t, err)
	assert.True(t, terminal.IsIOError(err))

	ft = &fakeTerm{writeErr: &terminal.IOError{Op: "write", Err: errors.New("EPIPE")}}
	src, view = newAdapters(t, ft)
	err = game.Run(src, view)
	require.Error(t, err)
	assert.True(t, terminal.IsIOError(err))
}

func stripSGR(s string) string {
	s = strings.ReplaceAll(s, "\x1b[31m", "")
	return strings.ReplaceAll(s, "\x1b[0m", "")
}
