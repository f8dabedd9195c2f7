package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/games/jungle"
	"github.com/vovakirdan/jungle-run/internal/platform/tui"
	"github.com/vovakirdan/jungle-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal.

Controls:
  Up/W       - Move up
  Down/S     - Move down
  Mouse drag - Move with the pointer
  R/Enter    - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, since the game owns the
terminal.

Examples:
  jungle play
  jungle play --seed 42
  jungle play --config ./my-jungle.yaml --log-file jungle.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size for the first layout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := runtimeConfig()
	hud := tui.NewHUD("")
	game, err := registry.Create(gameID(args), registry.Options{
		RuntimeConfig: rt,
		Config:        cfg,
		Observer:      jungle.Observers{hud, jungle.NewLogObserver(logger)},
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "game", game.ID(), "fps", rt.TickRate, "seed", rt.Seed)

	return tui.Run(game, hud, tui.Options{
		RuntimeConfig: rt,
		Width:         width,
		Height:        height,
		Logger:        logger,
	})
}
