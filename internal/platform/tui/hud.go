package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0c419"))
	hudScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	hudOverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d64545"))
)

// HUD is the score display. It implements core.ScoreObserver so a game
// can publish to it directly.
type HUD struct {
	title string
	score int
	over  bool
}

// NewHUD creates a score display for the named game.
func NewHUD(title string) *HUD {
	return &HUD{title: title}
}

// ScoreChanged implements core.ScoreObserver.
func (h *HUD) ScoreChanged(score int) {
	h.score = score
	h.over = false
}

// GameOver implements core.ScoreObserver.
func (h *HUD) GameOver(finalScore int) {
	h.score = finalScore
	h.over = true
}

// Score returns the last published score.
func (h *HUD) Score() int {
	return h.score
}

// ScoreText returns the plain score label.
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Score: %d", h.score)
}

// View renders the single HUD line.
func (h *HUD) View() string {
	line := hudTitleStyle.Render(h.title) + "  " + hudScoreStyle.Render(h.ScoreText())
	if h.over {
		line += "  " + hudOverStyle.Render("GAME OVER")
	}
	return line
}
