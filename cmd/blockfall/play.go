package main

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/internal/cli"
)

const (
	screenWidth  = 640
	screenHeight = 720
	debugWidth   = 1280
)

type playOptions struct {
	*cli.RootOptions
	Debug bool
}

func newPlayCommand(rootOpts *cli.RootOptions) *cobra.Command {
	opts := &playOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and play",
		Long: `Open a window and play.

Keys: arrows move and rotate, space hard-drops, P pauses, R restarts after
game over, Q or Escape quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "show the ImGui inspector next to the board")

	return cmd
}

func runPlay(opts *playOptions, cmd *cobra.Command) error {
	logger := opts.NewLogger(cmd.ErrOrStderr())

	cfg, err := opts.GameConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	shell, err := newShell(cfg, logger)
	if err != nil {
		return err
	}

	width := screenWidth
	if opts.Debug {
		width = debugWidth
		shell.imgui = ebitenbackend.NewEbitenBackend()
		shell.imgui.CreateWindow("Blockfall", width, screenHeight)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
		shell.attachPanel()
	} else {
		ebiten.SetWindowSize(width, screenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}

	logger.Info("window opening", "width", cfg.Width, "height", cfg.Height, "debug", opts.Debug)
	if err := ebiten.RunGame(shell); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("window closed", "score", shell.game.Score())
	return nil
}
