package mines

import (
	"iter"
	"strings"
)

// Point addresses a cell: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Chebyshev neighbourhood, (0, 0) excluded.
var adjacency = [8]Point{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Grid is a fixed-size row-major container of cells.
type Grid struct {
	width, height int
	cells         []Cell
}

func NewGrid(width, height int) Grid {
	width, height = max(width, 0), max(height, 0)
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }
func (g Grid) Len() int    { return len(g.cells) }

func (g Grid) InBounds(p Point) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

func (g Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

func (g Grid) point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// At returns the cell at p and false if p lies outside the grid.
func (g Grid) At(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Set is a no-op for points outside the grid.
func (g Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = c
	}
}

// Neighbours yields the in-bounds Chebyshev neighbours of p.
func (g Grid) Neighbours(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range adjacency {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// All yields every cell in row-major order.
func (g Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range g.cells {
			if !yield(g.point(i), c) {
				return
			}
		}
	}
}

// String dumps the grid with concealed mines visible, one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			b.WriteString(g.cells[y*g.width+x].DebugString())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
