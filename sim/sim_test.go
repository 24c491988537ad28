package sim

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
)

func testOptions(games, maxTicks int) Options {
	cfg := game.DefaultConfig()
	cfg.Seed = 42
	return Options{
		Games:        games,
		MaxTicks:     maxTicks,
		MovesPerTick: 2,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunPlaysEveryGame(t *testing.T) {
	report, err := Run(context.Background(), testOptions(3, 2000))
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	for i, res := range report.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, uint64(42+i), res.Seed)
		assert.LessOrEqual(t, res.Ticks, uint64(2000))
		if res.State != game.Over {
			assert.Equal(t, uint64(2000), res.Ticks)
		}
		assert.Positive(t, res.Pieces)
		assert.Empty(t, res.Board)
	}
	assert.NotEmpty(t, report.UpdateTime.Samples)
	assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.Max)
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	a, err := Run(context.Background(), testOptions(2, 1500))
	require.NoError(t, err)
	b, err := Run(context.Background(), testOptions(2, 1500))
	require.NoError(t, err)

	for i := range a.Results {
		ra, rb := a.Results[i], b.Results[i]
		assert.NotEqual(t, ra.ID, rb.ID, "each game gets its own session id")
		assert.Equal(t, ra.Score, rb.Score)
		assert.Equal(t, ra.Lines, rb.Lines)
		assert.Equal(t, ra.Pieces, rb.Pieces)
		assert.Equal(t, ra.Ticks, rb.Ticks)
		assert.Equal(t, ra.State, rb.State)
	}
	assert.Equal(t, a.BestScore, b.BestScore)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, testOptions(2, 100))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestRunKeepsBoards(t *testing.T) {
	opts := testOptions(1, 50)
	opts.ShowBoard = true

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Contains(t, report.Results[0].Board, "##########")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "12,345", formatNumber(12345))
	assert.Equal(t, "1,200,000", formatNumber(uint64(1200000)))
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Options: testOptions(2, 0),
		Results: []Result{
			{Index: 0, Seed: 42, State: game.Over, Score: 12345, Level: 1, Lines: 14, Pieces: 60, Ticks: 3000},
			{Index: 1, Seed: 43, State: game.Moving, Score: 40, Lines: 1, Pieces: 9, Ticks: 500},
		},
	}
	r.finalize()

	assert.Equal(t, 12345, r.BestScore)
	assert.Equal(t, 6192, r.AverageScore)
	assert.Equal(t, 15, r.TotalLines)
	assert.Equal(t, 69, r.TotalPieces)
	assert.Equal(t, 1, r.GamesOver)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Blockfall Simulation Report")
	assert.Contains(t, out, "**Max Ticks:** unlimited")
	assert.Contains(t, out, "**Games Over:** 1 of 2")
	assert.Contains(t, out, "**Best Score:** 12,345")
	assert.Contains(t, out, "| 0 | 42 | Over | 12,345 | 1 | 14 | 60 | 3,000 |")
	assert.Contains(t, out, "| 1 | 43 | Moving | 40 | 0 | 1 | 9 | 500 |")
	assert.NotContains(t, out, "Final Boards")
}
