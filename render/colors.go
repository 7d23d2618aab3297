package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-reversi/board"
)

// RGB palette for full-screen backends
var (
	RgbEmpty      = tcell.NewRGBColor(110, 110, 110) // Dim gray dots
	RgbBlackStone = tcell.NewRGBColor(90, 160, 255)  // Blue, readable on dark backgrounds
	RgbWhiteStone = tcell.NewRGBColor(240, 240, 240) // Near white
	RgbUnknown    = tcell.NewRGBColor(255, 0, 255)   // Magenta, should never show
	RgbCursor     = tcell.NewRGBColor(255, 60, 60)   // Red, matches the ANSI cursor escape
	RgbStatus     = tcell.NewRGBColor(180, 180, 180)
)

// Style returns the tcell style for a cell, cursor overrides the stone color
func Style(c board.Cell, cursor bool) tcell.Style {
	style := tcell.StyleDefault
	if cursor {
		return style.Foreground(RgbCursor).Bold(true)
	}
	switch c {
	case board.Empty:
		return style.Foreground(RgbEmpty)
	case board.Black:
		return style.Foreground(RgbBlackStone)
	case board.White:
		return style.Foreground(RgbWhiteStone)
	}
	return style.Foreground(RgbUnknown)
}

// StatusStyle is the style of the turn line
func StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(RgbStatus)
}
