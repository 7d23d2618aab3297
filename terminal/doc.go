// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the board view.
//
// Features:
//   - Raw stdin input decoding with escape sequence handling
//   - Whole-frame presentation on the alternate screen
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
