package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/catchverse/internal/game"
)

// KeyMap defines the key bindings of every screen.
type KeyMap struct {
	Submit    key.Binding
	Start     key.Binding
	PlayAgain key.Binding
	Exit      key.Binding
	Share     key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start game"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Exit: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "exit"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// phaseKeys is the help.KeyMap of a single screen.
type phaseKeys []key.Binding

// ShortHelp returns key bindings for the short help view.
func (k phaseKeys) ShortHelp() []key.Binding {
	return k
}

// FullHelp returns key bindings for the full help view.
func (k phaseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

// ForPhase returns the bindings shown in the help bar of a phase.
func (k KeyMap) ForPhase(p game.Phase) help.KeyMap {
	switch p {
	case game.PhaseIdle:
		return phaseKeys{k.Submit, k.ForceQuit}
	case game.PhaseInstructions:
		return phaseKeys{k.Start, k.Quit}
	case game.PhaseOver:
		return phaseKeys{k.PlayAgain, k.Exit, k.Share, k.Up, k.Down, k.Quit}
	default:
		return phaseKeys{k.Quit}
	}
}
