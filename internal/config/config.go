// Package config provides YAML-based game configuration loading and
// validation for Jungle Run.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jungle-run/internal/core"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Playfield   PlayfieldConfig `yaml:"playfield"`
	Actor       ActorConfig     `yaml:"actor"`
	Collectible EntityConfig    `yaml:"collectible"`
	Obstacle    EntityConfig    `yaml:"obstacle"`
	Spawn       SpawnConfig     `yaml:"spawn"`
	Input       InputConfig     `yaml:"input"`
}

// PlayfieldConfig defines the simulation area.
type PlayfieldConfig struct {
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Background HexColor `yaml:"background"`
	Grass      HexColor `yaml:"grass"` // Drawn at low opacity near the bottom edge
}

// ActorConfig defines the player-controlled lion.
type ActorConfig struct {
	X              float64  `yaml:"x"`
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	Speed          float64  `yaml:"speed"`
	StepMultiplier float64  `yaml:"step_multiplier"` // Key step = speed * multiplier
	Body           HexColor `yaml:"body"`
	Mane           HexColor `yaml:"mane"`
	Eye            HexColor `yaml:"eye"`
}

// Step returns the distance moved by one discrete up/down input.
func (a ActorConfig) Step() float64 {
	return a.Speed * a.StepMultiplier
}

// EntityConfig defines a class of scrolling entities.
type EntityConfig struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Speed  float64  `yaml:"speed"` // Leftward distance per tick
	Color  HexColor `yaml:"color"`
}

// SpawnConfig defines where new entities appear.
type SpawnConfig struct {
	Offset float64 `yaml:"offset"` // Distance past the right edge
}

// InputConfig defines pointer handling.
type InputConfig struct {
	DragDamping float64 `yaml:"drag_damping"` // Multiplier applied to drag deltas
}

// HexColor is a color written as "#rrggbb" in YAML.
type HexColor struct {
	core.Color
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	c, err := core.Hex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	h.Color = c
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HexColor) MarshalYAML() (any, error) {
	return h.Hex(), nil
}

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the config describes a playable game.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("must be positive, got %v", v)})
		}
	}
	opaque := func(field string, h HexColor) {
		if h.IsZero() {
			errs = append(errs, ValidationError{Field: field, Message: "missing color"})
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	opaque("playfield.background", c.Playfield.Background)
	opaque("playfield.grass", c.Playfield.Grass)

	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("actor.speed", c.Actor.Speed)
	positive("actor.step_multiplier", c.Actor.StepMultiplier)
	opaque("actor.body", c.Actor.Body)
	opaque("actor.mane", c.Actor.Mane)
	opaque("actor.eye", c.Actor.Eye)
	if c.Actor.X < 0 || c.Actor.X+c.Actor.Width > c.Playfield.Width {
		errs = append(errs, ValidationError{Field: "actor.x", Message: "actor must fit horizontally inside the playfield"})
	}
	if c.Actor.Height > c.Playfield.Height {
		errs = append(errs, ValidationError{Field: "actor.height", Message: "actor taller than the playfield"})
	}

	for _, e := range []struct {
		name string
		cfg  EntityConfig
	}{
		{"collectible", c.Collectible},
		{"obstacle", c.Obstacle},
	} {
		positive(e.name+".width", e.cfg.Width)
		positive(e.name+".height", e.cfg.Height)
		positive(e.name+".speed", e.cfg.Speed)
		opaque(e.name+".color", e.cfg.Color)
		if e.cfg.Height > c.Playfield.Height {
			errs = append(errs, ValidationError{Field: e.name + ".height", Message: "entity taller than the playfield"})
		}
	}

	if c.Spawn.Offset < 0 {
		errs = append(errs, ValidationError{Field: "spawn.offset", Message: "must not be negative"})
	}
	if c.Input.DragDamping < 0 {
		errs = append(errs, ValidationError{Field: "input.drag_damping", Message: "must not be negative"})
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
