package input

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/vi-reversi/terminal"
)

// KeyTable maps keys to intents
// A zero Intent in an override table means "unbind"
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	Keys map[terminal.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// Preset names
const (
	PresetIJKL   = "ijkl"
	PresetVi     = "vi"
	PresetArrows = "arrows"
)

// systemKeys are bound in every preset so the game can always be left
var systemKeys = map[terminal.Key]Intent{
	terminal.KeyCtrlC:  IntentQuit,
	terminal.KeyEscape: IntentQuit,
	terminal.KeyEnter:  IntentConfirm,
}

var presets = map[string]func() *KeyTable{
	PresetIJKL: func() *KeyTable {
		return &KeyTable{
			Keys: cloneKeyMap(systemKeys),
			Runes: map[rune]Intent{
				'i': IntentUp,
				'k': IntentDown,
				'j': IntentLeft,
				'l': IntentRight,
				'q': IntentQuit,
			},
		}
	},
	PresetVi: func() *KeyTable {
		return &KeyTable{
			Keys: cloneKeyMap(systemKeys),
			Runes: map[rune]Intent{
				'k': IntentUp,
				'j': IntentDown,
				'h': IntentLeft,
				'l': IntentRight,
				' ': IntentConfirm,
				'q': IntentQuit,
			},
		}
	},
	PresetArrows: func() *KeyTable {
		keys := cloneKeyMap(systemKeys)
		keys[terminal.KeyUp] = IntentUp
		keys[terminal.KeyDown] = IntentDown
		keys[terminal.KeyLeft] = IntentLeft
		keys[terminal.KeyRight] = IntentRight
		return &KeyTable{
			Keys:  keys,
			Runes: map[rune]Intent{'q': IntentQuit},
		}
	},
}

// Preset returns a fresh copy of the named key table
func Preset(name string) (*KeyTable, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown keymap preset %q (have %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the available presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a terminal event to an intent
// Unbound keys and non-key events resolve to IntentNone; closed input quits
func (kt *KeyTable) Resolve(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventClosed:
		return IntentQuit
	case terminal.EventKey:
	default:
		return IntentNone
	}

	// Alt-modified keys are never bound
	if ev.Modifiers&terminal.ModAlt != 0 {
		return IntentNone
	}

	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  cloneKeyMap(kt.Keys),
		Runes: cloneRuneMap(kt.Runes),
	}
}

func cloneRuneMap(m map[rune]Intent) map[rune]Intent {
	c := make(map[rune]Intent, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneKeyMap(m map[terminal.Key]Intent) map[terminal.Key]Intent {
	c := make(map[terminal.Key]Intent, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
