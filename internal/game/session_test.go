package game

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tty/internal/metrics"
	"github.com/vancomm/minesweeper-tty/internal/mines"
	"github.com/vancomm/minesweeper-tty/internal/tty"
)

// minesAt places mines exactly on the given row-major indices.
type minesAt map[int]bool

func (m minesAt) source() func() mines.Bernoulli {
	return func() mines.Bernoulli {
		return &indexed{mines: m}
	}
}

type indexed struct {
	mines minesAt
	i     int
}

func (s *indexed) Bernoulli(num, den int) bool {
	d := s.mines[s.i]
	s.i++
	return d
}

func newTestSession(t *testing.T, input string, m minesAt) (*Session, *strings.Builder, *metrics.Metrics) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out strings.Builder
	ctx := context.Background()
	met := metrics.New()
	s := NewSession(
		log,
		&out,
		tty.NewPrompter(ctx, strings.NewReader(input), &out),
		tty.NewRenderer(&out, false),
		met,
		m.source(),
	)
	return s, &out, met
}

func TestPlayUntilMine(t *testing.T) {
	// 3 rows, 3 columns, one mine at x=0 y=0
	s, out, met := newTestSession(t, "3\n3\n1\n2 2\nbad\n0 0\n", minesAt{0: true})

	require.NoError(t, s.Play(context.Background(), nil))

	text := out.String()
	assert.True(t, strings.HasSuffix(text,
		"Game over!\n\n   0 1 2\n 0 X 1 0 \n 1 1 1 0 \n 2 0 0 0 \n\n"), text)
	assert.Contains(t, text, "\n   0 1 2\n 0 # 1 0 \n 1 1 1 0 \n 2 0 0 0 \n\n")
	assert.Contains(t, text, "Invalid input: Please enter two numbers.")

	assert.Equal(t, 1.0, testutil.ToFloat64(met.GamesStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.GamesLost))
	assert.Equal(t, 9.0, testutil.ToFloat64(met.Revealed))
}

func TestPlayWithParams(t *testing.T) {
	// 4 columns, 1 row, mine at x=3
	s, out, _ := newTestSession(t, "9 0\n3 0\n", minesAt{3: true})

	params := &mines.GameParams{Width: 4, Height: 1, MineCount: 1}
	require.NoError(t, s.Play(context.Background(), params))

	text := out.String()
	assert.NotContains(t, text, "Enter number of rows:")
	assert.Equal(t, 2, strings.Count(text, "Enter guess:"))
	assert.True(t, strings.HasSuffix(text, "Game over!\n\n   0 1 2 3\n 0 0 0 1 X \n\n"), text)
}

func TestPlayEndOfInput(t *testing.T) {
	s, out, _ := newTestSession(t, "1 1\n", minesAt{0: true})

	params := &mines.GameParams{Width: 2, Height: 2, MineCount: 1}
	err := s.Play(context.Background(), params)

	assert.ErrorIs(t, err, io.EOF)
	assert.NotContains(t, out.String(), "Game over!")
}

func TestPlayCancelled(t *testing.T) {
	s, _, _ := newTestSession(t, "", minesAt{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Play(ctx, &mines.GameParams{Width: 2, Height: 2})
	assert.Error(t, err)
}
