package tty

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// InputParseError describes a line the player typed that could not be
// understood. It never reaches the engine.
type InputParseError struct {
	Input  string
	Reason string
}

// [InputParseError] implements [error]
func (e InputParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

type Position struct {
	X uint `schema:"x,required"`
	Y uint `schema:"y,required"`
}

func (p Position) Point() mines.Point {
	return mines.Point{X: int(p.X), Y: int(p.Y)}
}

type number struct {
	N uint `schema:"n,required"`
}

// decodeFields splits line on whitespace and decodes the i-th token into
// the field tagged keys[i].
func decodeFields(dst any, line string, keys ...string) error {
	fields := strings.Fields(line)
	if len(fields) != len(keys) {
		return InputParseError{
			Input:  line,
			Reason: fmt.Sprintf("expected %d numbers, got %d", len(keys), len(fields)),
		}
	}
	src := make(map[string][]string, len(keys))
	for i, key := range keys {
		src[key] = []string{fields[i]}
	}
	if err := decoder.Decode(dst, src); err != nil {
		return InputParseError{Input: line, Reason: err.Error()}
	}
	return nil
}

// ParseGuess reads "x y": x is the column, y the row.
func ParseGuess(line string) (Position, error) {
	var pos Position
	err := decodeFields(&pos, line, "x", "y")
	return pos, err
}

func ParseNumber(line string) (uint, error) {
	var n number
	err := decodeFields(&n, line, "n")
	return n.N, err
}

// ParseParamArgs decodes key=value arguments such as
// "width=9 height=9 mines=10".
func ParseParamArgs(args []string) (*mines.GameParams, error) {
	src, err := url.ParseQuery(strings.Join(args, "&"))
	if err != nil {
		return nil, fmt.Errorf("unable to parse game params: %w", err)
	}
	var params mines.GameParams
	if err := decoder.Decode(&params, src); err != nil {
		return nil, fmt.Errorf("unable to decode game params: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}
