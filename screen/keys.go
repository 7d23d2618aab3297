package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-reversi/terminal"
)

// tcellKeys maps tcell special keys onto the terminal key set so one KeyTable
// serves both backends. Ctrl+H/I/M alias Backspace/Tab/Enter in tcell.
var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,

	tcell.KeyUp:     terminal.KeyUp,
	tcell.KeyDown:   terminal.KeyDown,
	tcell.KeyLeft:   terminal.KeyLeft,
	tcell.KeyRight:  terminal.KeyRight,
	tcell.KeyHome:   terminal.KeyHome,
	tcell.KeyEnd:    terminal.KeyEnd,
	tcell.KeyPgUp:   terminal.KeyPageUp,
	tcell.KeyPgDn:   terminal.KeyPageDown,
	tcell.KeyInsert: terminal.KeyInsert,
	tcell.KeyF1:     terminal.KeyF1,
	tcell.KeyF2:     terminal.KeyF2,
	tcell.KeyF3:     terminal.KeyF3,
	tcell.KeyF4:     terminal.KeyF4,
	tcell.KeyCtrlA:  terminal.KeyCtrlA,
	tcell.KeyCtrlB:  terminal.KeyCtrlB,
	tcell.KeyCtrlC:  terminal.KeyCtrlC,
	tcell.KeyCtrlD:  terminal.KeyCtrlD,
	tcell.KeyCtrlE:  terminal.KeyCtrlE,
	tcell.KeyCtrlF:  terminal.KeyCtrlF,
	tcell.KeyCtrlG:  terminal.KeyCtrlG,
	tcell.KeyCtrlK:  terminal.KeyCtrlK,
	tcell.KeyCtrlL:  terminal.KeyCtrlL,
	tcell.KeyCtrlN:  terminal.KeyCtrlN,
	tcell.KeyCtrlO:  terminal.KeyCtrlO,
	tcell.KeyCtrlP:  terminal.KeyCtrlP,
	tcell.KeyCtrlQ:  terminal.KeyCtrlQ,
	tcell.KeyCtrlR:  terminal.KeyCtrlR,
	tcell.KeyCtrlS:  terminal.KeyCtrlS,
	tcell.KeyCtrlT:  terminal.KeyCtrlT,
	tcell.KeyCtrlU:  terminal.KeyCtrlU,
	tcell.KeyCtrlV:  terminal.KeyCtrlV,
	tcell.KeyCtrlW:  terminal.KeyCtrlW,
	tcell.KeyCtrlX:  terminal.KeyCtrlX,
	tcell.KeyCtrlY:  terminal.KeyCtrlY,
	tcell.KeyCtrlZ:  terminal.KeyCtrlZ,
}

// convertKey translates a tcell key event
// Keys with no counterpart become KeyNone and resolve to no intent.
func convertKey(ev *tcell.EventKey) terminal.Event {
	out := terminal.Event{Type: terminal.EventKey, Modifiers: convertMods(ev.Modifiers())}
	if ev.Key() == tcell.KeyRune {
		out.Key = terminal.KeyRune
		out.Rune = ev.Rune()
		return out
	}
	out.Key = tcellKeys[ev.Key()]
	return out
}

func convertMods(m tcell.ModMask) terminal.Modifier {
	var out terminal.Modifier
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	return out
}
