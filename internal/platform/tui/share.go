package tui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// ShareFunc copies a share message somewhere the player can paste it.
type ShareFunc func(text string) error

// OSC52Share returns a ShareFunc that asks the terminal on w to set its
// clipboard. It works over SSH, where the host clipboard is out of reach.
func OSC52Share(w io.Writer) ShareFunc {
	return func(text string) error {
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return fmt.Errorf("osc52: %w", err)
		}
		return nil
	}
}

// LocalShare returns a ShareFunc for a local terminal: the system clipboard
// when one is available, otherwise OSC 52 on w.
func LocalShare(w io.Writer) ShareFunc {
	fallback := OSC52Share(w)
	return func(text string) error {
		if !clipboard.Unsupported {
			if err := clipboard.WriteAll(text); err == nil {
				return nil
			}
		}
		return fallback(text)
	}
}

// shareDoneMsg reports the result of a share attempt.
type shareDoneMsg struct {
	err error
}

// shareCmd runs share off the update loop.
func shareCmd(share ShareFunc, text string) tea.Cmd {
	return func() tea.Msg {
		return shareDoneMsg{err: share(text)}
	}
}
