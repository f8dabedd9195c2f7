package jungle

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-run/internal/core"
)

// Observers fans notifications out to several observers in order.
type Observers []core.ScoreObserver

// ScoreChanged implements core.ScoreObserver.
func (o Observers) ScoreChanged(score int) {
	for _, obs := range o {
		obs.ScoreChanged(score)
	}
}

// GameOver implements core.ScoreObserver.
func (o Observers) GameOver(finalScore int) {
	for _, obs := range o {
		obs.GameOver(finalScore)
	}
}

// LogObserver reports score events to a structured logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer that logs through logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// ScoreChanged implements core.ScoreObserver.
func (o *LogObserver) ScoreChanged(score int) {
	o.logger.Debug("score changed", "score", score)
}

// GameOver implements core.ScoreObserver.
func (o *LogObserver) GameOver(finalScore int) {
	o.logger.Info("game over", "score", finalScore)
}

type nopObserver struct{}

func (nopObserver) ScoreChanged(int) {}
func (nopObserver) GameOver(int)     {}
