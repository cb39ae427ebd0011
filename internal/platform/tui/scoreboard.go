package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/stats"
)

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("208"))

	scoreboardHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// renderScoreboard builds the session scoreboard view: the best runs of
// this process, newest first on ties. Nothing here is persisted.
func renderScoreboard(store *stats.Store, width, height int) string {
	title := scoreboardTitleStyle.Render("Session Scores")
	hint := scoreboardHintStyle.Render("tab: back to game  •  q: quit")

	if store == nil || store.Count() == 0 {
		body := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			"No finished runs yet.",
			"",
			hint,
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 9},
	}

	runs := store.Top(10)
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%d", r.Score),
			r.Duration.Round(time.Second).String(),
			r.When.Format("15:04:05"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = lipgloss.NewStyle() // No selection highlight, display only
	t.SetStyles(styles)

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		t.View(),
		"",
		hint,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
