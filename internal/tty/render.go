package tty

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

// Board is the read side of [mines.Board] the renderer needs.
type Board interface {
	Dimensions() (width, height int)
	CellAt(p mines.Point) (mines.Cell, bool)
}

type Renderer struct {
	w     io.Writer
	debug bool
}

// NewRenderer returns a renderer writing to w. In debug mode concealed
// mines are drawn as a lowercase x.
func NewRenderer(w io.Writer, debug bool) *Renderer {
	return &Renderer{w: w, debug: debug}
}

// Render prints column headers, then one labelled line per row.
func (r *Renderer) Render(b Board) error {
	width, height := b.Dimensions()
	bw := bufio.NewWriter(r.w)

	fmt.Fprint(bw, "\n  ")
	for x := range width {
		fmt.Fprintf(bw, "%2d", x)
	}
	fmt.Fprintln(bw)

	for y := range height {
		fmt.Fprintf(bw, "%2d ", y)
		for x := range width {
			c, _ := b.CellAt(mines.Point{X: x, Y: y})
			if r.debug {
				fmt.Fprint(bw, c.DebugString()+" ")
			} else {
				fmt.Fprint(bw, c.String()+" ")
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// RenderFrequencies prints a row-major slice of per-cell frequencies laid
// out like the board.
func (r *Renderer) RenderFrequencies(width int, freqs []float64) error {
	if width <= 0 {
		return nil
	}
	bw := bufio.NewWriter(r.w)

	fmt.Fprint(bw, "\n   ")
	for x := range width {
		fmt.Fprintf(bw, "%6d", x)
	}
	fmt.Fprintln(bw)

	for y := range len(freqs) / width {
		fmt.Fprintf(bw, "%2d ", y)
		for _, f := range freqs[y*width : (y+1)*width] {
			fmt.Fprintf(bw, "%6.3f", f)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}
