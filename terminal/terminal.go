package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Terminal provides raw-mode terminal access for a text frame UI
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// PollEvent blocks until next input event
	PollEvent() Event

	// Present clears the screen and writes a pre-formatted frame at the origin
	Present(frame string) error
}

// termImpl implements Terminal on top of a Backend
type termImpl struct {
	backend Backend

	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

var (
	crashMu      sync.Mutex
	crashHandler func(any)
)

// SetCrashHandler injects the process panic handler for the input reader goroutine
// Keeps this package independent of the crash handling package
func SetCrashHandler(fn func(any)) {
	crashMu.Lock()
	crashHandler = fn
	crashMu.Unlock()
}

func loadCrashHandler() func(any) {
	crashMu.Lock()
	defer crashMu.Unlock()
	return crashHandler
}

// New creates a Terminal on stdin/stdout
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init enters raw mode and starts the input reader
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(func(w, h int) {
		t.send(Event{Type: EventResize, Width: w, Height: h})
	})

	if err := t.writeAll(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiClear); err != nil {
		t.backend.Fini()
		return err
	}

	go t.readLoop()

	t.initialized = true
	return nil
}

// Fini stops the reader and restores the terminal
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	<-t.doneCh

	// Teardown writes are best-effort, the tty may already be gone
	_ = t.writeAll(csiCursorShow, csiAltScreenExit, csiAutoWrapOn, csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// PollEvent blocks until next input event
// Returns EventClosed after Fini or when input reaches EOF
func (t *termImpl) PollEvent() Event {
	select {
	case ev := <-t.eventCh:
		return ev
	case <-t.doneCh:
		// Drain whatever the reader queued before exiting
		select {
		case ev := <-t.eventCh:
			return ev
		default:
			return Event{Type: EventClosed}
		}
	}
}

// Present writes one frame
func (t *termImpl) Present(frame string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return &IOError{Op: "present", Err: errors.New("terminal not active")}
	}

	return t.writeAll(csiClear, []byte(frame))
}

func (t *termImpl) writeAll(chunks ...[]byte) error {
	for _, c := range chunks {
		if err := t.backend.Write(c); err != nil {
			return err
		}
	}
	return nil
}

// readLoop pumps backend bytes through Decode until stopped
func (t *termImpl) readLoop() {
	defer func() {
		r := recover()
		// Closed before the crash handler runs so its Fini does not wait on us
		close(t.doneCh)
		if r == nil {
			return
		}
		if h := loadCrashHandler(); h != nil {
			h(r)
			return
		}
		EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}()

	buf := make([]byte, 0, 256)
	for {
		data, err := t.backend.Read(t.stopCh)
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.send(Event{Type: EventClosed})
			} else {
				t.send(Event{Type: EventError, Err: err})
			}
			return
		}

		if len(data) == 0 {
			// Quiet read: a held ESC or bare introducer is a real key
			if ev, ok := FlushEscape(buf); ok {
				t.send(ev)
				buf = buf[:0]
			}
			select {
			case <-t.stopCh:
				return
			default:
				continue
			}
		}

		buf = append(buf, data...)
		events, consumed := Decode(buf)
		for _, ev := range events {
			t.send(ev)
		}
		buf = append(buf[:0], buf[consumed:]...)
	}
}

// send queues an event without blocking the reader
func (t *termImpl) send(ev Event) {
	select {
	case t.eventCh <- ev:
	default:
		// Channel full, drop
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
