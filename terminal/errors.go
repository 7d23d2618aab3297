package terminal

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned by Init when stdin is not a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// IOError is a terminal I/O fault: raw mode, read or write failure
// Game logic never produces it; it only surfaces from the terminal layer
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err carries a terminal I/O fault
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
