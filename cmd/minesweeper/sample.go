package main

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tty/internal/config"
	"github.com/vancomm/minesweeper-tty/internal/sample"
	"github.com/vancomm/minesweeper-tty/internal/tty"
)

func runSample(ctx context.Context, cfg *config.Config) error {
	if cfg.Game == nil {
		return errors.New("sampling needs game params (width=W height=H mines=M)")
	}
	params := *cfg.Game

	log.WithFields(logrus.Fields{
		"params":  params.Seed(),
		"runs":    samples,
		"workers": workers,
	}).Info("sampling mine placement")

	freqs, err := sample.Frequencies(ctx, params, samples, workers, newSource)
	if err != nil {
		return err
	}
	return tty.NewRenderer(os.Stdout, false).RenderFrequencies(params.Width, freqs)
}
