package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
	"github.com/vovakirdan/jungle-run/internal/games/jungle"
	"github.com/vovakirdan/jungle-run/internal/registry"
)

// Headless screen used for the final frame.
const (
	simScreenW = 80
	simScreenH = 24
)

var (
	flagTicks    int
	flagPolicy   string
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a headless simulation",
	Long: `Runs the game without a terminal UI until the run ends or the tick
limit is reached, then prints the final frame and score.

Policies:
  idle    - No input; the lion stays in the middle
  random  - Random up/down presses derived from --seed

Examples:
  jungle sim --seed 42
  jungle sim --ticks 10000 --policy random --seed 7
  jungle sim --realtime --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum frames to run")
	simCmd.Flags().StringVar(&flagPolicy, "policy", "idle", "Input policy: idle, random")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
}

// simOptions controls a headless run.
type simOptions struct {
	Ticks    int
	Policy   policy
	Interval time.Duration // Zero runs flat out
}

// simResult summarizes a headless run.
type simResult struct {
	Frames int
	Ticks  int
	State  core.GameState
	Screen *core.Screen
}

// policy produces the input for the next frame, if any.
type policy func(frame int) (core.Input, bool)

func idlePolicy(int) (core.Input, bool) {
	return core.Input{}, false
}

// randomPolicy presses up or down on roughly a third of the frames.
func randomPolicy(seed int64) policy {
	rng := rand.New(rand.NewSource(seed))
	return func(int) (core.Input, bool) {
		switch rng.Intn(6) {
		case 0:
			return core.Press(core.ActionUp), true
		case 1:
			return core.Press(core.ActionDown), true
		}
		return core.Input{}, false
	}
}

func parsePolicy(name string, seed int64) (policy, error) {
	switch name {
	case "idle":
		return idlePolicy, nil
	case "random":
		return randomPolicy(seed), nil
	}
	return nil, fmt.Errorf("unknown policy %q (expected idle or random)", name)
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	rt := runtimeConfig()
	pol, err := parsePolicy(flagPolicy, rt.Seed)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID(args), registry.Options{
		RuntimeConfig: rt,
		Config:        cfg,
		Observer:      jungle.NewLogObserver(logger),
	})
	if err != nil {
		return err
	}

	opts := simOptions{Ticks: flagTicks, Policy: pol}
	if flagRealtime {
		opts.Interval = rt.TickInterval()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "game", game.ID(), "seed", rt.Seed, "policy", flagPolicy, "ticks", flagTicks)
	res, err := simulate(ctx, game, opts)
	printSimResult(cmd.OutOrStdout(), game.Title(), rt.Seed, res)
	if err != nil {
		logger.Warn("simulation interrupted", "frames", res.Frames)
		return fmt.Errorf("simulation interrupted after %d frames: %w", res.Frames, err)
	}
	return nil
}

// simulate runs frames until the game ends, the tick limit is reached or
// ctx is cancelled. It returns ctx.Err() on cancellation together with
// the partial result.
func simulate(ctx context.Context, game registry.Game, opts simOptions) (simResult, error) {
	field := game.Playfield()
	screen := core.NewScreen(simScreenW, simScreenH)
	canvas := core.NewCanvas(screen, field.W, field.H)
	res := simResult{Screen: screen}

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for res.Frames < opts.Ticks && !game.State().GameOver {
		if err := ctx.Err(); err != nil {
			res.State = game.State()
			return res, err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				res.State = game.State()
				return res, ctx.Err()
			case <-tick:
			}
		}

		if opts.Policy != nil {
			if in, ok := opts.Policy(res.Frames); ok {
				game.HandleInput(in)
			}
		}
		step := game.Frame(canvas)
		res.Frames++
		res.Ticks += step.Ticks
	}

	// One more frame so an ended run shows its overlay
	if game.State().GameOver {
		game.Frame(canvas)
	}
	res.State = game.State()
	return res, nil
}

func printSimResult(w io.Writer, title string, seed int64, res simResult) {
	fmt.Fprintln(w, res.Screen.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  seed=%d  frames=%d  ticks=%d  score=%d  game_over=%t\n",
		title, seed, res.Frames, res.Ticks, res.State.Score, res.State.GameOver)
}
