package jungle

import (
	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
)

// RunState is the top-level state of a run.
type RunState int

const (
	StateRunning RunState = iota
	StateEnded
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// SpawnTimers counts ticks since the last spawn of each entity class.
type SpawnTimers struct {
	Collectible int
	Obstacle    int
}

// World owns every piece of mutable run state. It is created by NewWorld
// and replaced wholesale on restart, never repaired in place.
type World struct {
	Field        core.Box // Playfield bounds, always at the origin
	Actor        Actor
	Collectibles []Entity
	Obstacles    []Entity
	Score        int
	State        RunState
	Timers       SpawnTimers
}

// NewWorld creates a fresh running world with the actor vertically centered.
func NewWorld(cfg config.Config) *World {
	field := core.NewBox(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)
	return &World{
		Field: field,
		Actor: Actor{
			Box:   core.NewBox(cfg.Actor.X, (field.H-cfg.Actor.Height)/2, cfg.Actor.Width, cfg.Actor.Height),
			Speed: cfg.Actor.Speed,
		},
		Collectibles: make([]Entity, 0, 8),
		Obstacles:    make([]Entity, 0, 8),
		State:        StateRunning,
	}
}

// Running reports whether the simulation is advancing.
func (w *World) Running() bool {
	return w.State == StateRunning
}

// maxActorY is the lowest position the actor's top edge may take.
func (w *World) maxActorY() float64 {
	return w.Field.H - w.Actor.Box.H
}

// setActorY moves the actor, clamped to the playfield.
func (w *World) setActorY(y float64) {
	w.Actor.Box.Y = core.ClampF(y, 0, w.maxActorY())
}
