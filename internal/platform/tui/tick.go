// Package tui provides the Bubble Tea integration for the puzzle.
// It handles the terminal UI loop, input mapping and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TrailTickMsg reveals one more step of a chain's trail.
// Gen ties the tick to the follow that started it.
type TrailTickMsg struct {
	Gen  int
	Time time.Time
}

// trailTickCmd returns a command that sends one trail tick after step.
func trailTickCmd(step time.Duration, gen int) tea.Cmd {
	return tea.Tick(step, func(t time.Time) tea.Msg {
		return TrailTickMsg{Gen: gen, Time: t}
	})
}
