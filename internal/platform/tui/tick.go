// Package tui provides the Bubble Tea frontend for blockfall: the terminal
// game loop, key bindings, the scoreboard, and SSH hosting via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a gravity tick armed for one game. Ticks whose Epoch no longer
// matches the session are stale and dropped.
type TickMsg struct {
	Epoch uint64
	At    time.Time
}

// tickCmd arms a single gravity tick after interval.
func tickCmd(interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}
