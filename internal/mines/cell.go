package mines

import "strconv"

type CellKind int8

const (
	Concealed CellKind = iota
	ConcealedMine
	Revealed
	RevealedMine
)

// Cell is one square of the board. Count is only meaningful for the
// safe kinds and holds the number of mine-bearing neighbours.
type Cell struct {
	Kind  CellKind
	Count int8
}

func ConcealedCell(n int) Cell { return Cell{Kind: Concealed, Count: int8(n)} }

func RevealedCell(n int) Cell { return Cell{Kind: Revealed, Count: int8(n)} }

var (
	HiddenMine = Cell{Kind: ConcealedMine}
	ShownMine  = Cell{Kind: RevealedMine}
)

// Reveal maps concealed kinds to their revealed counterparts; revealed
// cells are returned unchanged.
func (c Cell) Reveal() Cell {
	switch c.Kind {
	case Concealed:
		return Cell{Kind: Revealed, Count: c.Count}
	case ConcealedMine:
		return ShownMine
	}
	return c
}

func (c Cell) IsMine() bool {
	return c.Kind == ConcealedMine || c.Kind == RevealedMine
}

func (c Cell) IsRevealed() bool {
	return c.Kind == Revealed || c.Kind == RevealedMine
}

// [Cell] implements [fmt.Stringer]
func (c Cell) String() string {
	switch c.Kind {
	case Revealed:
		return strconv.Itoa(int(c.Count))
	case RevealedMine:
		return "X"
	default:
		return "#"
	}
}

// DebugString is like String but gives away concealed mines.
func (c Cell) DebugString() string {
	if c.Kind == ConcealedMine {
		return "x"
	}
	return c.String()
}
