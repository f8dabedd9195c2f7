package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an opacity in [0, 1].
// The zero value is fully transparent and means "leave the cell as is".
type Color struct {
	RGB   colorful.Color
	Alpha float64
}

// Predefined colors used by overlays and text.
var (
	ColorBlack = MustHex("#000000")
	ColorWhite = MustHex("#ffffff")
)

// Hex parses a "#rrggbb" or "#rgb" string into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color{RGB: c, Alpha: 1}, nil
}

// MustHex is like Hex but panics on malformed input.
// Intended for package-level color literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of the color with the given opacity.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = ClampF(alpha, 0, 1)
	return c
}

// IsZero reports whether the color is fully transparent.
func (c Color) IsZero() bool {
	return c.Alpha <= 0
}

// Over composites c on top of dst and returns the resulting color.
func (c Color) Over(dst Color) Color {
	switch {
	case c.Alpha >= 1:
		return c
	case c.IsZero():
		return dst
	case dst.IsZero():
		// Unknown terminal background; treat it as black.
		return Color{RGB: ColorBlack.RGB.BlendRgb(c.RGB, c.Alpha), Alpha: 1}
	}
	return Color{RGB: dst.RGB.BlendRgb(c.RGB, c.Alpha).Clamped(), Alpha: dst.Alpha}
}

// Hex returns the "#rrggbb" form of the color, ignoring opacity.
func (c Color) Hex() string {
	return c.RGB.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.Alpha < 1 {
		return fmt.Sprintf("%s@%.2f", c.Hex(), c.Alpha)
	}
	return c.Hex()
}
