package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catchverse/internal/leaderboard"
)

// Scoreboard layout constants
const (
	rankWidth      = 6
	scoreWidth     = 8
	minNameWidth   = 10
	maxNameWidth   = 24
	minTableHeight = 3
	maxTableHeight = 10
)

// newScoreboard creates the leaderboard table shown on the game-over screen.
// The row of the newest entry matching highlight is selected.
func newScoreboard(entries []leaderboard.Entry, width, height int, highlight leaderboard.Entry) table.Model {
	nameWidth := width - rankWidth - scoreWidth - 16 // Borders, padding and box margins
	nameWidth = max(minNameWidth, min(nameWidth, maxNameWidth))

	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
	}

	rows := make([]table.Row, len(entries))
	selected := 0
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
		if e == highlight {
			selected = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, min(height-14, maxTableHeight))), // Leave room for the summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	t.SetCursor(selected)
	return t
}

// scoreboardView renders the table or an empty message.
func scoreboardView(t table.Model) string {
	if len(t.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No scores recorded yet.")
	}
	return t.View()
}
