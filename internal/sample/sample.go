package sample

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

// Frequencies builds runs boards from params across workers goroutines and
// returns, for every cell in row-major order, the fraction of boards that
// put a mine there. Each worker gets its own source from newSource.
func Frequencies(
	ctx context.Context,
	params mines.GameParams,
	runs, workers int,
	newSource func() mines.Bernoulli,
) ([]float64, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("invalid number of runs: %d", runs)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, runs)

	hits := make([][]int, workers)
	sources := make([]mines.Bernoulli, workers)
	for w := range workers {
		sources[w] = newSource()
	}

	g, gCtx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			local := make([]int, params.Cells())
			for run := w; run < runs; run += workers {
				if err := gCtx.Err(); err != nil {
					return err
				}
				b := mines.New(params, sources[w])
				i := 0
				for _, c := range b.Cells() {
					if c.IsMine() {
						local[i]++
					}
					i++
				}
			}
			hits[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	freqs := make([]float64, params.Cells())
	for _, local := range hits {
		for i, n := range local {
			freqs[i] += float64(n)
		}
	}
	for i := range freqs {
		freqs[i] /= float64(runs)
	}
	return freqs, nil
}
