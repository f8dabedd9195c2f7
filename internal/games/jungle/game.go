// Package jungle implements Jungle Run, a side-scrolling arcade game.
// The lion moves up and down to eat meat flying in from the right while
// dodging rocks; touching a rock ends the run.
package jungle

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
	"github.com/vovakirdan/jungle-run/internal/registry"
)

// ID is the registry identifier.
const ID = "jungle"

func init() {
	registry.Register(ID, func(opts registry.Options) registry.Game {
		gameOpts := []Option{WithSeed(opts.Seed)}
		if opts.Observer != nil {
			gameOpts = append(gameOpts, WithObserver(opts.Observer))
		}
		return New(opts.Config, gameOpts...)
	})
}

// Game drives a World one frame at a time and owns its lifecycle.
// It is not safe for concurrent use: the host must deliver input and
// frames from a single goroutine.
type Game struct {
	cfg      config.Config
	world    *World
	spawner  Spawner
	observer core.ScoreObserver
}

// Option customizes a Game.
type Option func(*Game)

// WithRand sets the randomness source for spawn positions.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.spawner = NewFactory(g.cfg, rng)
	}
}

// WithSeed seeds the default randomness source. Zero picks a seed from
// the clock.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithSpawner replaces the entity factory.
func WithSpawner(s Spawner) Option {
	return func(g *Game) {
		g.spawner = s
	}
}

// WithObserver sets the score observer.
func WithObserver(o core.ScoreObserver) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// New creates a game ready to run. The config must be valid.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		observer: nopObserver{},
	}
	WithSeed(0)(g)
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// ID returns the registry identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jungle Run"
}

// Playfield returns the simulation area in world units.
func (g *Game) Playfield() core.Box {
	return g.world.Field
}

// World exposes the current world for inspection. Callers must not keep
// the pointer across Reset.
func (g *Game) World() *World {
	return g.world
}

// Reset replaces the world with a fresh running one.
func (g *Game) Reset() {
	g.world = NewWorld(g.cfg)
	g.observer.ScoreChanged(0)
	checkWorld(g.world)
}

// HandleInput applies a single input event. Movement is ignored once the
// run has ended; restart is only honored then.
func (g *Game) HandleInput(in core.Input) {
	switch in.Action {
	case core.ActionUp:
		MoveUp(g.world, g.cfg.Actor.Step())
	case core.ActionDown:
		MoveDown(g.world, g.cfg.Actor.Step())
	case core.ActionDrag:
		DragBy(g.world, in.DY, g.cfg.Input.DragDamping)
	case core.ActionRestart:
		if !g.world.Running() {
			g.Reset()
		}
	}
	checkWorld(g.world)
}

// Frame runs one host frame. While running it renders the current
// positions, then simulates one tick and lets the scheduler spawn. Once
// ended it only renders the game over screen.
func (g *Game) Frame(dst core.Surface) core.StepResult {
	if !g.world.Running() {
		g.renderGameOver(dst)
		return core.StepResult{State: g.State()}
	}

	g.renderScene(dst)
	ev := Step(g.world)
	Schedule(g.world, g.spawner)
	checkWorld(g.world)

	if ev.Collected > 0 {
		g.observer.ScoreChanged(g.world.Score)
	}
	if ev.Ended {
		g.observer.GameOver(g.world.Score)
	}
	return core.StepResult{State: g.State(), Ticks: 1}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: !g.world.Running(),
	}
}
