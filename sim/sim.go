// Package sim plays headless games with a random autoplayer and summarizes
// the results. It drives the same OnInput/OnTick surface a shell uses.
package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
)

// Options configures a simulation run.
type Options struct {
	Games        int
	MaxTicks     int
	MovesPerTick int
	ShowBoard    bool

	// Config is the base game configuration. Game i plays with seed
	// Config.Seed+i; a zero seed is replaced by a random one.
	Config game.Config
	Logger *slog.Logger
}

// Result is the outcome of one simulated game.
type Result struct {
	Index  int
	ID     string
	Seed   uint64
	State  game.BoardState
	Score  int
	Level  int
	Lines  int
	Pieces int
	Ticks  uint64
	Board  string
}

// Run plays opts.Games games in sequence. It stops early, returning the
// games finished so far and ctx's error, when ctx is done.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MovesPerTick < 1 {
		opts.MovesPerTick = 1
	}
	if opts.Config.Seed == 0 {
		opts.Config.Seed = rand.Uint64()
	}

	report := &Report{
		Options: opts,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	var err error
	for i := 0; i < opts.Games; i++ {
		var res Result
		res, err = playOne(ctx, opts, i, &report.UpdateTime)
		if err != nil {
			break
		}
		opts.Logger.Info("game finished",
			"game", res.ID, "seed", res.Seed, "state", res.State.String(),
			"score", res.Score, "lines", res.Lines, "ticks", res.Ticks)
		report.Results = append(report.Results, res)
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.finalize()
	return report, err
}

func playOne(ctx context.Context, opts Options, index int, updates *Stats) (Result, error) {
	cfg := opts.Config
	cfg.Seed += uint64(index)

	g, err := game.New(cfg, game.WithLogger(opts.Logger))
	if err != nil {
		return Result{}, err
	}

	res := Result{Index: index, ID: g.ID().String(), Seed: cfg.Seed}
	g.Subscribe(func(e game.Event) {
		switch e.Kind {
		case game.EventRowsCleared:
			res.Lines += len(e.Rows)
		case game.EventLocked:
			res.Pieces++
		}
	})

	player := NewAutoplayer(cfg.Seed)
	for g.State() != game.Over && (opts.MaxTicks <= 0 || int(g.Ticks()) < opts.MaxTicks) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		updateStart := time.Now()
		for m := 0; m < opts.MovesPerTick; m++ {
			g.OnInput(player.Next())
		}
		g.OnTick(1)
		updates.Samples = append(updates.Samples, time.Since(updateStart))
	}

	res.State = g.State()
	res.Score = g.Score()
	res.Level = g.Level()
	res.Ticks = g.Ticks()
	if opts.ShowBoard {
		res.Board = g.String()
	}
	return res, nil
}
