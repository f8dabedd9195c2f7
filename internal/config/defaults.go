package config

import (
	_ "embed"

	"github.com/vovakirdan/jungle-run/internal/core"
)

//go:embed defaults/jungle.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/jungle.yaml and is used if the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:      800,
			Height:     400,
			Background: hex("#bfe3a8"),
			Grass:      hex("#000000"),
		},
		Actor: ActorConfig{
			X:              60,
			Width:          60,
			Height:         60,
			Speed:          6,
			StepMultiplier: 2,
			Body:           hex("#f0c419"),
			Mane:           hex("#c38f1c"),
			Eye:            hex("#111111"),
		},
		Collectible: EntityConfig{
			Width:  28,
			Height: 28,
			Speed:  4,
			Color:  hex("#d64545"),
		},
		Obstacle: EntityConfig{
			Width:  48,
			Height: 48,
			Speed:  6,
			Color:  hex("#6b3f26"),
		},
		Spawn: SpawnConfig{
			Offset: 20,
		},
		Input: InputConfig{
			DragDamping: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

func hex(s string) HexColor {
	return HexColor{Color: core.MustHex(s)}
}
