// @focus: #game { board }
package board

// Size is the fixed board dimension; boards never resize
const Size = 8

// Cell is the state of a single board square
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// String returns the color name, used by logs and status lines
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Unknown"
}

// IsStone reports whether c is one of the two stone colors
func (c Cell) IsStone() bool {
	return c == Black || c == White
}

// Opponent returns the opposing stone color, Empty for Empty
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Pos is a 0-indexed (row, col) board coordinate
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether p lies on the board
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Add returns p offset by d
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Directions are the 8 compass vectors scanned on placement: N, S, W, E, NW, NE, SW, SE
var Directions = [8]Pos{
	{-1, 0}, {1, 0},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 1},
	{1, -1}, {1, 1},
}

// Board is an 8x8 grid of cells, row-major
// Value type: copying a Board copies the grid
type Board struct {
	cells [Size][Size]Cell
}

// New returns a board seeded with the standard Othello opening
func New() *Board {
	b := &Board{}
	mid := Size / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = White, White
	b.cells[mid-1][mid], b.cells[mid][mid-1] = Black, Black
	return b
}

// At returns the cell at p, Empty when p is off the board
func (b *Board) At(p Pos) Cell {
	if !p.InBounds() {
		return Empty
	}
	return b.cells[p.Row][p.Col]
}

// Set overwrites a cell without any capture logic
// Intended for setup and tests; out-of-bounds positions are ignored
func (b *Board) Set(p Pos, c Cell) {
	if !p.InBounds() {
		return
	}
	b.cells[p.Row][p.Col] = c
}

// Rows returns a copy of the grid for read-only iteration
func (b *Board) Rows() [Size][Size]Cell {
	return b.cells
}
