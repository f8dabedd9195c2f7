package jungle

import (
	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
)

func testConfig() config.Config {
	return config.Default()
}

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// recordingObserver remembers every notification.
type recordingObserver struct {
	scores []int
	finals []int
}

func (o *recordingObserver) ScoreChanged(score int) { o.scores = append(o.scores, score) }
func (o *recordingObserver) GameOver(final int)     { o.finals = append(o.finals, final) }

// drawOp is one call made on a recordingSurface.
type drawOp struct {
	kind  string
	box   core.Box
	color core.Color
	text  string
}

// recordingSurface implements core.Surface by logging calls.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear(region core.Box) {
	s.ops = append(s.ops, drawOp{kind: "clear", box: region})
}

func (s *recordingSurface) FillRect(r core.Box, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", box: r, color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, radius float64, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", box: core.NewBox(cx-radius, cy-radius, radius*2, radius*2), color: c})
}

func (s *recordingSurface) FillText(text string, x, y, _ float64, _ core.Align, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "text", box: core.NewBox(x, y, 0, 0), color: c, text: text})
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// overlapping returns an entity that will sit exactly on the actor after
// one tick of motion.
func overlapping(w *World, kind Kind, ec config.EntityConfig) Entity {
	a := w.Actor.Box
	return Entity{
		Kind:  kind,
		Box:   core.NewBox(a.X+ec.Speed, a.Y, a.W, a.H),
		Speed: ec.Speed,
		Color: ec.Color.Color,
	}
}
