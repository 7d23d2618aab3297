package core

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-reversi/terminal"
)

// crashState holds what the panic path needs, set up once by main
type crashState struct {
	mu      sync.Mutex
	log     zerolog.Logger
	cleanup func()
	out     io.Writer
	errOut  io.Writer
}

var crash = &crashState{
	log:    zerolog.Nop(),
	out:    os.Stdout,
	errOut: os.Stderr,
}

var exit = os.Exit

// SetCrashLogger routes crash reports to the debug log as well as stderr
func SetCrashLogger(l zerolog.Logger) {
	crash.mu.Lock()
	crash.log = l
	crash.mu.Unlock()
}

// SetCrashCleanup registers the teardown run before the emergency reset, e.g. a tcell Fini
func SetCrashCleanup(fn func()) {
	crash.mu.Lock()
	crash.cleanup = fn
	crash.mu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crash.mu.Lock()
	cleanup, log := crash.cleanup, crash.log
	crash.mu.Unlock()

	if cleanup != nil {
		func() {
			defer func() { _ = recover() }()
			cleanup()
		}()
	}
	// Restore terminal to sane state
	terminal.EmergencyReset(crash.out)

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	// \r\n in case the tty is still raw
	fmt.Fprintf(crash.errOut, "\r\n\x1b[31mVI-REVERSI CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crash.errOut, "Stack Trace:\r\n%s\r\n", stack)

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Recover is deferred at the top of main: defer core.Recover()
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// ExitOnSignal restores the terminal and exits when one of sigs arrives
// Raw mode disables ISIG, so these only come from outside (kill, hangup).
// The returned stop func detaches the watcher.
func ExitOnSignal(sigs ...os.Signal) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sigs...)

	Go(func() {
		select {
		case sig := <-ch:
			crash.mu.Lock()
			cleanup, log := crash.cleanup, crash.log
			crash.mu.Unlock()

			if cleanup != nil {
				cleanup()
			}
			log.Warn().Stringer("signal", sig).Msg("terminated by signal")
			exit(1)
		case <-done:
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
