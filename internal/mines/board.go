package mines

import (
	"iter"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type PickOutcome int

const (
	Ignored PickOutcome = iota
	Opened
	Cascaded
	Exploded
)

func (o PickOutcome) String() string {
	switch o {
	case Opened:
		return "opened"
	case Cascaded:
		return "cascaded"
	case Exploded:
		return "exploded"
	default:
		return "ignored"
	}
}

// PickResult reports what a single pick changed.
type PickResult struct {
	Outcome  PickOutcome
	Revealed int
}

// Board owns the grid and the game-over flag. It is not safe for
// concurrent use.
type Board struct {
	grid     Grid
	mines    int
	gameOver bool
}

// New places exactly min(MineCount, Width*Height) mines and precomputes
// adjacency counts. Construction is the only consumer of src.
func New(params GameParams, src Bernoulli) *Board {
	grid := NewGrid(params.Width, params.Height)
	b := &Board{
		grid:  grid,
		mines: params.Mines(),
	}
	b.placeMines(src)
	b.countAdjacent()

	Log.WithFields(logrus.Fields{
		"params": params.Seed(),
		"mines":  b.mines,
	}).Debug("board created")

	return b
}

// placeMines visits cells in row-major order, drawing each with
// probability remaining mines over remaining slots, which yields a
// uniformly random subset of exactly b.mines cells.
func (b *Board) placeMines(src Bernoulli) {
	slots := b.grid.Len()
	unassigned := b.mines
	for i := range b.grid.cells {
		if unassigned > 0 && src.Bernoulli(unassigned, slots) {
			b.grid.cells[i] = HiddenMine
			unassigned--
		}
		slots--
	}
	if unassigned != 0 {
		panic(AssertionError{"mines left unplaced"})
	}
}

func (b *Board) countAdjacent() {
	for i, c := range b.grid.cells {
		if c.IsMine() {
			continue
		}
		b.grid.cells[i] = ConcealedCell(b.adjacentMines(b.grid.point(i)))
	}
}

// adjacentMines counts mine-bearing neighbours, concealed or revealed.
func (b *Board) adjacentMines(p Point) int {
	n := 0
	for q := range b.grid.Neighbours(p) {
		if c, _ := b.grid.At(q); c.IsMine() {
			n++
		}
	}
	return n
}

// Pick opens the cell at p. Out-of-bounds points, revealed cells and any
// pick after the game is over are ignored. A concealed zero starts a
// cascade.
func (b *Board) Pick(p Point) PickResult {
	c, ok := b.grid.At(p)
	if !ok || c.IsRevealed() || b.gameOver {
		return PickResult{Outcome: Ignored}
	}

	switch {
	case c.Kind == ConcealedMine:
		b.grid.Set(p, c.Reveal())
		b.gameOver = true
		return PickResult{Outcome: Exploded, Revealed: 1}
	case c.Count > 0:
		b.grid.Set(p, c.Reveal())
		return PickResult{Outcome: Opened, Revealed: 1}
	}

	n := b.cascade(p)
	Log.WithFields(logrus.Fields{
		"x":        p.X,
		"y":        p.Y,
		"revealed": n,
	}).Debug("cascade")
	return PickResult{Outcome: Cascaded, Revealed: n}
}

// cascade reveals the 8-connected region of zeros around start together
// with its non-zero border and returns the number of cells revealed.
// Mines are never touched.
func (b *Board) cascade(start Point) int {
	todo := newCellTodo(b.grid.Len())
	todo.add(b.grid.index(start))

	revealed := 0
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		c := b.grid.cells[i]
		if c.Kind != Concealed {
			continue
		}
		b.grid.cells[i] = c.Reveal()
		revealed++
		if c.Count > 0 {
			continue
		}
		for q := range b.grid.Neighbours(b.grid.point(i)) {
			todo.add(b.grid.index(q))
		}
	}
	return revealed
}

// RevealAll reveals every cell. Showing a mine ends the game, so the
// board is over afterwards unless it holds no mines.
func (b *Board) RevealAll() {
	for i, c := range b.grid.cells {
		b.grid.cells[i] = c.Reveal()
	}
	if b.mines > 0 {
		b.gameOver = true
	}
}

func (b *Board) Over() bool {
	return b.gameOver
}

func (b *Board) Dimensions() (width, height int) {
	return b.grid.Width(), b.grid.Height()
}

func (b *Board) MineCount() int {
	return b.mines
}

func (b *Board) CellAt(p Point) (Cell, bool) {
	return b.grid.At(p)
}

func (b *Board) Cells() iter.Seq2[Point, Cell] {
	return b.grid.All()
}

// [Board] implements [fmt.Stringer]
func (b *Board) String() string {
	return b.grid.String()
}
