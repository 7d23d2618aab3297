// @focus: #render { frame }
package render

import (
	"strings"

	"github.com/lixenwraith/vi-reversi/board"
)

const (
	// sgrCursor colors the cursor cell red
	sgrCursor = "\x1b[31m"
	sgrReset  = "\x1b[0m"

	// lineEnd is CR+LF so rows start at column 0 under raw-mode line discipline
	lineEnd = "\r\n"
)

// Renderer turns board state into display output
type Renderer struct {
	Glyphs   GlyphSet
	ShowTurn bool
}

// New creates a renderer for a glyph set
func New(glyphs GlyphSet) *Renderer {
	return &Renderer{Glyphs: glyphs}
}

// Glyph returns the symbol for a cell
func (r *Renderer) Glyph(c board.Cell) string {
	switch c {
	case board.Empty:
		return r.Glyphs.Empty
	case board.Black:
		return r.Glyphs.Black
	case board.White:
		return r.Glyphs.White
	}
	return r.Glyphs.Unknown
}

// Frame renders the grid: one row per line, each cell followed by a space,
// the cursor cell wrapped in a color escape, rows ended by CR+LF
func (r *Renderer) Frame(b *board.Board, cursor board.Pos) string {
	var sb strings.Builder
	sb.Grow(board.Size * (board.Size*2 + len(lineEnd) + len(sgrCursor) + len(sgrReset)))

	rows := b.Rows()
	for row := range rows {
		for col, cell := range rows[row] {
			symbol := r.Glyph(cell)
			if row == cursor.Row && col == cursor.Col {
				sb.WriteString(sgrCursor)
				sb.WriteString(symbol)
				sb.WriteString(sgrReset)
				sb.WriteByte(' ')
			} else {
				sb.WriteString(symbol)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(lineEnd)
	}
	return sb.String()
}

// Status renders the one-line turn indicator
func (r *Renderer) Status(toMove board.Cell) string {
	return toMove.String() + " to move" + lineEnd
}

// Screen renders the full frame: grid plus the turn line when enabled
func (r *Renderer) Screen(b *board.Board, cursor board.Pos, toMove board.Cell) string {
	frame := r.Frame(b, cursor)
	if r.ShowTurn {
		frame += r.Status(toMove)
	}
	return frame
}
