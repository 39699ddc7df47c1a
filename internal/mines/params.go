package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width     int `json:"width" yaml:"width" schema:"width,required"`
	Height    int `json:"height" yaml:"height" schema:"height,required"`
	MineCount int `json:"mine_count" yaml:"mine_count" schema:"mines,required"`
}

// Cells is the number of squares on the board.
func (p GameParams) Cells() int {
	return max(p.Width, 0) * max(p.Height, 0)
}

// Mines is the number of mines a board built from p actually holds.
func (p GameParams) Mines() int {
	return min(max(p.MineCount, 0), p.Cells())
}

func (p GameParams) Validate() error {
	if p.Width < 0 || p.Height < 0 || p.MineCount < 0 {
		return fmt.Errorf("negative game params %s", p.Seed())
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
