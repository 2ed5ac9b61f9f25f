package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Nydauron/teamscore/leaderboard"
	"github.com/Nydauron/teamscore/tournament"
)

var pingPong = tournament.EventDefinition{Name: "Ping Pong Tournament", Kind: tournament.KindTournament}
var quiz = tournament.EventDefinition{Name: "College Quiz", Kind: tournament.KindElimination}

func typeText(t *testing.T, m tea.Model, text string) tea.Model {
	t.Helper()
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestScoreForm_Tournament(t *testing.T) {
	var m tea.Model = NewScoreForm("Team 1", pingPong, nil)
	require.Contains(t, m.View(), "Score for Team 1 - Ping Pong Tournament")

	m = typeText(t, m, "3")
	m, _ = press(m, tea.KeyEnter)
	require.Contains(t, m.View(), "Matches Lost")

	m = typeText(t, m, "2")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	form := m.(ScoreForm)
	require.True(t, form.Done)
	require.Equal(t, tournament.ScoreInput{Wins: "3", Losses: "2"}, form.Input())
}

func TestScoreForm_RejectsBadInput(t *testing.T) {
	var m tea.Model = NewScoreForm("Team 1", quiz, nil)

	m, _ = press(m, tea.KeyEnter)
	require.EqualError(t, m.(ScoreForm).Err(), "Points cannot be empty.")

	m = typeText(t, m, "abc")
	m, _ = press(m, tea.KeyEnter)
	require.EqualError(t, m.(ScoreForm).Err(), "Points must be a number.")
	require.Contains(t, m.View(), "Points must be a number.")
	require.False(t, m.(ScoreForm).Done)
}

func TestScoreForm_PrefillsCurrentRecord(t *testing.T) {
	var m tea.Model = NewScoreForm("Team 2", pingPong, tournament.MatchRecord{Wins: 1, Losses: 4})
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)

	form := m.(ScoreForm)
	require.True(t, form.Done)
	require.Equal(t, tournament.ScoreInput{Wins: "1", Losses: "4"}, form.Input())
}

func TestScoreForm_Cancel(t *testing.T) {
	var m tea.Model = NewScoreForm("Team 1", quiz, nil)
	m, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	require.True(t, m.(ScoreForm).Cancelled)
	require.Empty(t, m.View())
}

func TestEventPicker(t *testing.T) {
	events := tournament.New().Events()

	var m tea.Model = NewEventPicker(events, "College Quiz")
	require.Contains(t, m.View(), "[x] 3. College Quiz (Elimination) - current")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.Contains(t, m.View(), "[x] 2. Video Game Tournament")

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown) // already at the end
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, "Scavenger Hunt", m.(EventPicker).Chosen)
}

func TestEventPicker_Cancel(t *testing.T) {
	var m tea.Model = NewEventPicker(tournament.New().Events(), "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, m.(EventPicker).Cancelled)
	require.Empty(t, m.(EventPicker).Chosen)
}

func TestSelection_IgnoresOutOfRange(t *testing.T) {
	s := NewSelection([]SelectionOption{{Key: "a", DisplayText: "A"}, {Key: "b", DisplayText: "B"}}, 0, true)
	s, _ = s.Update(UpdateSelection{Idx: 5})
	key, ok := s.GetKey()
	require.True(t, ok)
	require.Equal(t, "a", key)
	require.Equal(t, "[x] 1. A [ ] 2. B", s.View())
}

func TestStandingsBars(t *testing.T) {
	board := leaderboard.Board{
		Event:      "Ping Pong Tournament",
		ShowDetail: true,
		Entries: []leaderboard.Entry{
			{Rank: 1, Team: "Team 1", Score: 7, Detail: "2/1"},
			{Rank: 2, Team: "Team 10", Score: 0, Detail: "0/0"},
		},
	}
	out := StandingsBars(board, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Ping Pong Tournament", lines[0])
	require.True(t, strings.HasPrefix(lines[1], " 1. Team 1 "))
	require.True(t, strings.HasSuffix(lines[1], " 7 (2/1)"))
	require.True(t, strings.HasSuffix(lines[2], " 0 (0/0)"))

	require.Equal(t, "No teams or scores to display.\n", StandingsBars(leaderboard.Board{}, 0))
}
