package leaderboard

import (
	"slices"
	"strconv"

	"github.com/Nydauron/teamscore/tournament"
)

type Board struct {
	Event      string          `yaml:"event,omitempty" json:"event,omitempty"`
	Kind       tournament.Kind `yaml:"type,omitempty" json:"type,omitempty"`
	ShowDetail bool            `yaml:"-" json:"-"`
	Entries    []Entry         `yaml:"standings" json:"standings"`
}

type Entry struct {
	Rank   int    `yaml:"rank" json:"rank"`
	Team   string `yaml:"team" json:"team"`
	Score  int    `yaml:"score" json:"score"`
	Detail string `yaml:"wins/losses,omitempty" json:"wins_losses,omitempty"`
}

// Rank orders teams by total score, highest first. Equal scores are ordered
// by team name (see tournament.CompareNames), and every team still gets its
// own rank: two teams on 20 points are ranked 1 and 2. For Tournament events
// each entry carries a "wins/losses" detail; unscored teams show "0/0".
func Rank(s *tournament.State) Board {
	board := Board{Entries: []Entry{}}
	active, hasActive := s.ActiveEvent()
	if hasActive {
		board.Event = active.Name
		board.Kind = active.Kind
		board.ShowDetail = active.Kind == tournament.KindTournament
	}

	teams := s.Teams()
	slices.SortStableFunc(teams, func(a, b tournament.Team) int {
		if a.TotalScore != b.TotalScore {
			if a.TotalScore > b.TotalScore {
				return -1
			}
			return 1
		}
		return tournament.CompareNames(a.Name, b.Name)
	})

	for i, t := range teams {
		e := Entry{Rank: i + 1, Team: t.Name, Score: t.TotalScore}
		if board.ShowDetail {
			rec, _ := t.EventScores[active.Name].(tournament.MatchRecord)
			e.Detail = rec.Detail()
		}
		board.Entries = append(board.Entries, e)
	}
	return board
}

func (b Board) Header() []string {
	h := []string{"Rank", "Team Name", "Score"}
	if b.ShowDetail {
		h = append(h, "Wins/Losses")
	}
	return h
}

// Rows returns one string row per entry, aligned with Header.
func (b Board) Rows() [][]string {
	rows := make([][]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		row := []string{strconv.Itoa(e.Rank), e.Team, strconv.Itoa(e.Score)}
		if b.ShowDetail {
			row = append(row, e.Detail)
		}
		rows = append(rows, row)
	}
	return rows
}

// Table is Header followed by Rows.
func (b Board) Table() [][]string {
	return append([][]string{b.Header()}, b.Rows()...)
}
