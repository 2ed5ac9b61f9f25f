package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Nydauron/teamscore/leaderboard"
)

const defaultBarWidth = 30

// StandingsBars renders the board as one progress bar per team, scaled to
// the leading score.
func StandingsBars(b leaderboard.Board, width int) string {
	if len(b.Entries) == 0 {
		return "No teams or scores to display.\n"
	}
	if width <= 0 {
		width = defaultBarWidth
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage())

	top := 0
	nameWidth := 0
	for _, e := range b.Entries {
		top = max(top, e.Score)
		nameWidth = max(nameWidth, len(e.Team))
	}

	var s strings.Builder
	if b.Event != "" {
		fmt.Fprintf(&s, "%s\n", b.Event)
	}
	for _, e := range b.Entries {
		percent := 0.0
		if top > 0 {
			percent = float64(e.Score) / float64(top)
		}
		fmt.Fprintf(&s, "%2d. %-*s %s %d", e.Rank, nameWidth, e.Team, bar.ViewAs(percent), e.Score)
		if e.Detail != "" {
			fmt.Fprintf(&s, " (%s)", e.Detail)
		}
		s.WriteString("\n")
	}
	return s.String()
}
