package tty

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

// Prompter asks questions on out and reads answers line by line from in.
// Lines are scanned on a separate goroutine so that a pending read can be
// abandoned when ctx is cancelled.
type Prompter struct {
	out   io.Writer
	lines chan string
	err   error
}

func NewPrompter(ctx context.Context, in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
	}
	go p.scan(ctx, in)
	return p
}

func (p *Prompter) scan(ctx context.Context, in io.Reader) {
	defer close(p.lines)
	s := bufio.NewScanner(in)
	for s.Scan() {
		select {
		case p.lines <- s.Text():
		case <-ctx.Done():
			return
		}
	}
	p.err = s.Err()
}

// ReadLine prints prompt and waits for the next line. It returns io.EOF
// once the input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("unable to read input: %w", p.err)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// ReadNumber repeats prompt until an unsigned integer is entered.
func (p *Prompter) ReadNumber(ctx context.Context, prompt string) (uint, error) {
	for {
		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := ParseNumber(line)
		var ipe InputParseError
		if errors.As(err, &ipe) {
			fmt.Fprintln(p.out, "Invalid number!")
			continue
		}
		return n, err
	}
}

// ReadParams asks for rows, columns and mines. Rows are the board height.
func (p *Prompter) ReadParams(ctx context.Context) (*mines.GameParams, error) {
	rows, err := p.ReadNumber(ctx, "Enter number of rows:")
	if err != nil {
		return nil, err
	}
	cols, err := p.ReadNumber(ctx, "Enter number of columns:")
	if err != nil {
		return nil, err
	}
	count, err := p.ReadNumber(ctx, "Enter number of mines:")
	if err != nil {
		return nil, err
	}
	return &mines.GameParams{
		Width:     int(cols),
		Height:    int(rows),
		MineCount: int(count),
	}, nil
}

// ReadGuess repeats the guess prompt until two unsigned integers are
// entered.
func (p *Prompter) ReadGuess(ctx context.Context) (mines.Point, error) {
	for {
		line, err := p.ReadLine(ctx, "Enter guess:")
		if err != nil {
			return mines.Point{}, err
		}
		pos, err := ParseGuess(line)
		var ipe InputParseError
		if errors.As(err, &ipe) {
			fmt.Fprintln(p.out, "Invalid input: Please enter two numbers.\nex. 1 2")
			continue
		}
		if err != nil {
			return mines.Point{}, err
		}
		return pos.Point(), nil
	}
}
