package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/game"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	Seed       uint64
	Level      int
}

// NewRootCommand creates the root command for the blockfall CLI. Commands
// that need a window are added by the caller.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blockfall",
		Short: "Blockfall - a falling-block puzzle",
		Long:  "Play or simulate a falling-block puzzle with seven-bag randomization and classic line-clear scoring.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Level < 0 {
				return fmt.Errorf("invalid level %d: must not be negative", opts.Level)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML game config")
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "piece randomizer seed (0 picks one)")
	cmd.PersistentFlags().IntVar(&opts.Level, "level", 0, "starting level")

	cmd.AddCommand(NewSimulateCommand(opts))

	return cmd
}

// NewLogger returns a text logger writing to w, at debug level when
// verbose output is on.
func (o *RootOptions) NewLogger(w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// GameConfig loads the config file, if any, and applies the flags the user
// set explicitly on top of it.
func (o *RootOptions) GameConfig(cmd *cobra.Command) (game.Config, error) {
	cfg := game.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		cfg, err = game.LoadConfig(o.ConfigPath)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.Seed
	}
	if cmd.Flags().Changed("level") {
		cfg.StartLevel = o.Level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
