package game

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tty/internal/metrics"
	"github.com/vancomm/minesweeper-tty/internal/mines"
	"github.com/vancomm/minesweeper-tty/internal/tty"
)

// Session plays a single game: it asks for parameters if none are given,
// then alternates rendering and picking until a mine is hit.
type Session struct {
	log       *logrus.Logger
	out       io.Writer
	prompter  *tty.Prompter
	renderer  *tty.Renderer
	metrics   *metrics.Metrics
	newSource func() mines.Bernoulli
}

func NewSession(
	log *logrus.Logger,
	out io.Writer,
	prompter *tty.Prompter,
	renderer *tty.Renderer,
	m *metrics.Metrics,
	newSource func() mines.Bernoulli,
) *Session {
	return &Session{
		log:       log,
		out:       out,
		prompter:  prompter,
		renderer:  renderer,
		metrics:   m,
		newSource: newSource,
	}
}

// Play returns nil once the game is over and the final board is printed.
// Running out of input yields io.EOF; cancellation yields ctx.Err().
func (s *Session) Play(ctx context.Context, params *mines.GameParams) error {
	if params == nil {
		var err error
		params, err = s.prompter.ReadParams(ctx)
		if err != nil {
			return err
		}
	}

	board := mines.New(*params, s.newSource())
	s.metrics.GameStarted(*params)
	s.log.WithFields(logrus.Fields{
		"params": params.Seed(),
		"mines":  board.MineCount(),
	}).Info("game started")

	turn := 0
	for !board.Over() {
		if err := s.renderer.Render(board); err != nil {
			return fmt.Errorf("unable to render board: %w", err)
		}

		p, err := s.prompter.ReadGuess(ctx)
		if err != nil {
			return err
		}
		turn++

		res := board.Pick(p)
		s.metrics.ObservePick(res)
		s.log.WithFields(logrus.Fields{
			"turn":     turn,
			"x":        p.X,
			"y":        p.Y,
			"outcome":  res.Outcome.String(),
			"revealed": res.Revealed,
		}).Debug("pick")
	}

	fmt.Fprintln(s.out, "Game over!")
	board.RevealAll()
	if err := s.renderer.Render(board); err != nil {
		return fmt.Errorf("unable to render board: %w", err)
	}

	s.log.WithField("turns", turn).Info("game over")
	return nil
}
