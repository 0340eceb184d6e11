// Package tui provides the Bubble Tea presentation layer for the puzzle.
// It maps keys to engine commands, drains the engine's event stream and
// renders its snapshots; all game rules live in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg is sent once per second to drive the session clock.
type ClockMsg time.Time

// clockCmd returns a Bubble Tea command that sends the next clock tick.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
