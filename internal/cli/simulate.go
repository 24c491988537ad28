package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/sim"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Games        int
	MaxTicks     int
	MovesPerTick int
	ShowBoard    bool
	Timeout      time.Duration
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play headless games with a random autoplayer",
		Long: `Play headless games with a random autoplayer and print a report.

Game i uses seed+i, so a run is reproducible once the seed is fixed.

Example:
  blockfall simulate --games 10 --seed 42
  blockfall simulate --games 1 --max-ticks 500 --show-board`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Games, "games", 1, "number of games to play")
	cmd.Flags().IntVar(&opts.MaxTicks, "max-ticks", 10000, "gravity ticks per game before giving up (0 = until game over)")
	cmd.Flags().IntVar(&opts.MovesPerTick, "moves-per-tick", 2, "autoplayer inputs between gravity ticks")
	cmd.Flags().BoolVar(&opts.ShowBoard, "show-board", false, "include each game's final board in the report")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "stop after this long (0 = no limit)")

	return cmd
}

func runSimulate(opts *SimulateOptions, cmd *cobra.Command) error {
	if opts.Games < 1 {
		return fmt.Errorf("invalid games %d: must be at least 1", opts.Games)
	}
	if opts.MovesPerTick < 1 {
		return fmt.Errorf("invalid moves-per-tick %d: must be at least 1", opts.MovesPerTick)
	}

	logger := opts.NewLogger(cmd.ErrOrStderr())

	cfg, err := opts.GameConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	logger.Info("simulation starting", "games", opts.Games, "seed", cfg.Seed, "level", cfg.StartLevel)
	report, err := sim.Run(ctx, sim.Options{
		Games:        opts.Games,
		MaxTicks:     opts.MaxTicks,
		MovesPerTick: opts.MovesPerTick,
		ShowBoard:    opts.ShowBoard,
		Config:       cfg,
		Logger:       logger,
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("simulation failed: %w", err)
		}
		logger.Info("simulation stopped early", "games", len(report.Results), "reason", err)
	}

	if err := report.Generate(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}
