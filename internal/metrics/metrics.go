package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

const namespace = "minesweeper"

// Metrics counts games on a private registry. There is no listener; the
// registry is dumped in the textfile exposition format on request.
type Metrics struct {
	registry *prometheus.Registry

	GamesStarted prometheus.Counter
	GamesLost    prometheus.Counter
	Picks        *prometheus.CounterVec
	Revealed     prometheus.Counter
	BoardCells   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Number of boards created",
		}),
		GamesLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_lost_total",
			Help:      "Number of games ended by picking a mine",
		}),
		Picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "picks_total",
				Help:      "Number of picks by outcome",
			},
			[]string{"outcome"},
		),
		Revealed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revealed_cells_total",
			Help:      "Number of cells revealed by picks",
		}),
		BoardCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "board_cells",
			Help:      "Size of created boards",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 5),
		}),
	}
	m.registry.MustRegister(
		m.GamesStarted, m.GamesLost, m.Picks, m.Revealed, m.BoardCells,
	)
	return m
}

func (m *Metrics) GameStarted(params mines.GameParams) {
	m.GamesStarted.Inc()
	m.BoardCells.Observe(float64(params.Cells()))
}

func (m *Metrics) ObservePick(res mines.PickResult) {
	m.Picks.WithLabelValues(res.Outcome.String()).Inc()
	m.Revealed.Add(float64(res.Revealed))
	if res.Outcome == mines.Exploded {
		m.GamesLost.Inc()
	}
}

// WriteTextfile atomically replaces path with the current values, for
// node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("unable to write metrics to %s: %w", path, err)
	}
	return nil
}
