package sciolyff

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Nydauron/teamscore/leaderboard"
	"github.com/Nydauron/teamscore/tournament"
)

const (
	DefaultTournamentName = "Tournament"
	DefaultLevel          = "Invitational"
	// Points are better when higher for every built-in event.
	scoringHigh = "high"
)

var ErrNoResults = errors.New("no event selected, nothing to export")

type Metadata struct {
	Name     string
	Location string
	// Date in YYYY-MM-DD form. Empty means today.
	Date string
}

// Generate builds a document for the active event. Teams are numbered in
// natural name order starting at 1. Teams without a recorded score did not
// participate and are placed after every team that did.
func Generate(s *tournament.State, meta Metadata, now time.Time) (SciolyFF, error) {
	event, ok := s.ActiveEvent()
	if !ok {
		return SciolyFF{}, ErrNoResults
	}

	date := strings.TrimSpace(meta.Date)
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	parsedDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return SciolyFF{}, fmt.Errorf("invalid tournament date %q: %w", meta.Date, err)
	}
	name := strings.TrimSpace(meta.Name)
	if name == "" {
		name = DefaultTournamentName
	}

	teams := s.Teams()
	schools := make([]School, len(teams))
	numbers := make(map[string]uint, len(teams))
	for i, t := range teams {
		numbers[t.Name] = uint(i + 1)
		schools[i] = School{TeamNumber: uint(i + 1), Name: t.Name}
		if len(t.Members) > 0 {
			schools[i].Members = t.Members
		}
	}

	board := leaderboard.Rank(s)
	participants := make([]leaderboard.Entry, 0, len(board.Entries))
	for _, e := range board.Entries {
		if s.HasScore(e.Team, event.Name) {
			participants = append(participants, e)
		}
	}
	scoreCount := map[int]int{}
	for _, e := range participants {
		scoreCount[e.Score]++
	}

	// tied teams share a place and the places they cover are skipped (1, 1, 3)
	placings := make([]Placing, 0, len(board.Entries))
	place := uint(0)
	for i, e := range participants {
		if i == 0 || e.Score != participants[i-1].Score {
			place = uint(i + 1)
		}
		placings = append(placings, Placing{
			Event:        event.Name,
			TeamNumber:   numbers[e.Team],
			Participated: true,
			Tie:          scoreCount[e.Score] > 1,
			Place:        place,
		})
	}
	for _, e := range board.Entries {
		if s.HasScore(e.Team, event.Name) {
			continue
		}
		placings = append(placings, Placing{
			Event:      event.Name,
			TeamNumber: numbers[e.Team],
			Place:      uint(len(participants) + 1),
		})
	}

	return SciolyFF{
		Tournament: TournamentMetadata{
			Name:     name,
			Location: strings.TrimSpace(meta.Location),
			Level:    DefaultLevel,
			Year:     parsedDate.Year(),
			Date:     date,
		},
		Events:   []Event{{Name: event.Name, ScoringObjective: scoringHigh}},
		Teams:    schools,
		Placings: placings,
	}, nil
}

// Write encodes the document as YAML with two-space indentation.
func Write(w io.Writer, doc SciolyFF) error {
	yamlEncoder := yaml.NewEncoder(w)
	yamlEncoder.SetIndent(2)
	if err := yamlEncoder.Encode(&doc); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	if err := yamlEncoder.Close(); err != nil {
		return fmt.Errorf("encoding to YAML failed on close: %w", err)
	}
	return nil
}
