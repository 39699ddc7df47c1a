package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

func TestObservePick(t *testing.T) {
	m := New()

	m.GameStarted(mines.GameParams{Width: 9, Height: 9, MineCount: 10})
	m.ObservePick(mines.PickResult{Outcome: mines.Cascaded, Revealed: 12})
	m.ObservePick(mines.PickResult{Outcome: mines.Opened, Revealed: 1})
	m.ObservePick(mines.PickResult{Outcome: mines.Ignored})
	m.ObservePick(mines.PickResult{Outcome: mines.Exploded, Revealed: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesLost))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.Revealed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Picks.WithLabelValues("cascaded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Picks.WithLabelValues("ignored")))
	assert.Equal(t, 4, testutil.CollectAndCount(m.Picks))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.GameStarted(mines.GameParams{Width: 3, Height: 3})

	path := filepath.Join(t.TempDir(), "minesweeper.prom")
	require.NoError(t, m.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "minesweeper_games_started_total 1"))
}
