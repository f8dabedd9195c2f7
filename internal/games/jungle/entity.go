package jungle

import (
	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
)

// Kind distinguishes the two classes of scrolling entities.
type Kind int

const (
	KindCollectible Kind = iota // Meat: worth points
	KindObstacle                // Rock: ends the run
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled lion. Only Box.Y ever changes.
type Actor struct {
	Box   core.Box
	Speed float64 // Base vertical speed; input steps are a multiple of it
}

// Entity is a collectible or an obstacle scrolling toward the actor.
type Entity struct {
	Kind  Kind
	Box   core.Box
	Speed float64 // Leftward distance per tick, always positive
	Color core.Color
}

// advance moves the entity one tick to the left.
func (e *Entity) advance() {
	e.Box.X -= e.Speed
}

// offscreen reports whether the entity has fully left the playfield
// through the left edge.
func (e Entity) offscreen() bool {
	return e.Box.Right() < 0
}

// Rand is the randomness source used for spawn positions.
// *rand.Rand satisfies it; tests inject deterministic sources.
type Rand interface {
	Float64() float64
}

// Spawner creates new entities at the right edge of the playfield.
type Spawner interface {
	NewCollectible() Entity
	NewObstacle() Entity
}

// Factory is the default Spawner. It places entities just past the right
// edge at a uniformly random height.
type Factory struct {
	rng         Rand
	field       core.Box
	offset      float64
	collectible config.EntityConfig
	obstacle    config.EntityConfig
}

// NewFactory creates a factory for the configured playfield and entities.
func NewFactory(cfg config.Config, rng Rand) *Factory {
	return &Factory{
		rng:         rng,
		field:       core.NewBox(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
		offset:      cfg.Spawn.Offset,
		collectible: cfg.Collectible,
		obstacle:    cfg.Obstacle,
	}
}

// NewCollectible spawns a collectible.
func (f *Factory) NewCollectible() Entity {
	return f.spawn(KindCollectible, f.collectible)
}

// NewObstacle spawns an obstacle.
func (f *Factory) NewObstacle() Entity {
	return f.spawn(KindObstacle, f.obstacle)
}

// spawn places an entity at x = width + offset and y in [0, height - h).
func (f *Factory) spawn(kind Kind, ec config.EntityConfig) Entity {
	y := f.rng.Float64() * (f.field.H - ec.Height)
	return Entity{
		Kind:  kind,
		Box:   core.NewBox(f.field.Right()+f.offset, y, ec.Width, ec.Height),
		Speed: ec.Speed,
		Color: ec.Color.Color,
	}
}
