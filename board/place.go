package board

// Reason explains a rejected placement
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonOccupied
	ReasonOutOfBounds
	ReasonInvalidColor
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOccupied:
		return "occupied"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonInvalidColor:
		return "invalid color"
	}
	return "unknown"
}

// Result is the outcome of a placement
type Result struct {
	Accepted bool
	Reason   Reason
	Flipped  []Pos // Captured cells in Directions order, nil when nothing flipped
}

// Place puts a stone of color c at p and flips every bounded opponent run
//
// The only rejection in normal play is an occupied target. Unlike official
// Othello rules, a placement that captures nothing is still accepted.
// Rejected placements never mutate the board.
func (b *Board) Place(p Pos, c Cell) Result {
	if !p.InBounds() {
		return Result{Reason: ReasonOutOfBounds}
	}
	if !c.IsStone() {
		return Result{Reason: ReasonInvalidColor}
	}
	if b.cells[p.Row][p.Col] != Empty {
		return Result{Reason: ReasonOccupied}
	}

	b.cells[p.Row][p.Col] = c

	var flipped []Pos
	for _, d := range Directions {
		run := b.boundedRun(p, d, c)
		for _, q := range run {
			b.cells[q.Row][q.Col] = c
		}
		flipped = append(flipped, run...)
	}

	return Result{Accepted: true, Flipped: flipped}
}

// boundedRun walks from p along d collecting opponent stones
// Returns the run only when a stone of color c closes it; edge or Empty discards it
func (b *Board) boundedRun(p Pos, d Pos, c Cell) []Pos {
	opp := c.Opponent()
	var run []Pos

	for q := p.Add(d); q.InBounds(); q = q.Add(d) {
		switch b.cells[q.Row][q.Col] {
		case opp:
			run = append(run, q)
		case c:
			return run
		default:
			return nil
		}
	}
	return nil
}
