// Package tui provides the Bubble Tea display surface for Catchverse.
// It maps mouse clicks to balls, drives the session's tick loop and shows
// the name form, instructions, playfield and game-over screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen is the loop generation that armed it; a tick from a superseded
// generation is dropped and not re-armed.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
