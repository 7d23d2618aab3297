package terminal

import "unicode/utf8"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// Decode parses raw input bytes into key events
// Returns the events and the number of bytes consumed. Parsing stops at an
// incomplete escape or UTF-8 sequence, which is left for the next read.
// A lone trailing ESC is also left unconsumed; callers flush it with
// FlushEscape once the escape timeout elapses.
func Decode(data []byte) ([]Event, int) {
	var events []Event
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			events = append(events, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return events, i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return events, i
			}
			// Unknown sequences are swallowed
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			events = append(events, parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			events = append(events, Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			i++
			continue
		}
		if i+seqLen > n {
			return events, i
		}
		r, size := utf8.DecodeRune(data[i:])
		events = append(events, Event{Type: EventKey, Key: KeyRune, Rune: r})
		i += size
	}
	return events, i
}

// FlushEscape reports whether buf holds only a pending escape prefix
// The reader calls it after a quiet read: a lone ESC is the Escape key, and
// a bare CSI/SS3 introducer (ESC [ or ESC O) is Alt+[ or Alt+O.
func FlushEscape(buf []byte) (Event, bool) {
	switch {
	case len(buf) == 1 && buf[0] == 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}, true
	case len(buf) == 2 && buf[0] == 0x1b && (buf[1] == '[' || buf[1] == 'O'):
		return Event{Type: EventKey, Key: KeyRune, Rune: rune(buf[1]), Modifiers: ModAlt}, true
	}
	return Event{}, false
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// parseEscape parses an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	}

	switch data[1] {
	case '[':
		return parseCSI(data)
	case 'O':
		return parseSS3(data)
	}

	// Alt+control
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: emit ESC, let the byte parse on its own
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses ESC [ params final
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end := 2; end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			// Valid but unknown CSI, consume to prevent garbage
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if len(data) >= 16 {
		// Runaway sequence without terminator
		return maxScan, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

// parseSS3 parses ESC O X
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseControl maps C0 control bytes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	if k, ok := ctrlLetters[b]; ok {
		return Event{Type: EventKey, Key: k}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// ctrlLetters maps Ctrl+letter bytes that have no dedicated key
var ctrlLetters = map[byte]Key{
	0x01: KeyCtrlA, 0x02: KeyCtrlB, 0x03: KeyCtrlC, 0x04: KeyCtrlD,
	0x05: KeyCtrlE, 0x06: KeyCtrlF, 0x07: KeyCtrlG, 0x0b: KeyCtrlK,
	0x0c: KeyCtrlL, 0x0e: KeyCtrlN, 0x0f: KeyCtrlO, 0x10: KeyCtrlP,
	0x11: KeyCtrlQ, 0x12: KeyCtrlR, 0x13: KeyCtrlS, 0x14: KeyCtrlT,
	0x15: KeyCtrlU, 0x16: KeyCtrlV, 0x17: KeyCtrlW, 0x18: KeyCtrlX,
	0x19: KeyCtrlY, 0x1a: KeyCtrlZ,
}
