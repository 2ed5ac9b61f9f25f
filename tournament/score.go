package tournament

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	KindTournament  Kind = "Tournament"
	KindElimination Kind = "Elimination"
)

func (k Kind) Valid() bool {
	return k == KindTournament || k == KindElimination
}

const (
	PointsPerWin  = 3
	PointsPerLoss = 1
)

// ScoreRecord is one team's result for one event. The concrete type is fixed
// by the event's Kind: MatchRecord for Tournament events, PlacementRecord for
// Elimination events.
type ScoreRecord interface {
	Points() int
	Kind() Kind
	isScoreRecord()
}

type MatchRecord struct {
	Wins   int
	Losses int
}

func (r MatchRecord) Points() int {
	return r.Wins*PointsPerWin + r.Losses*PointsPerLoss
}

func (MatchRecord) Kind() Kind     { return KindTournament }
func (MatchRecord) isScoreRecord() {}

// Detail renders the record as "wins/losses".
func (r MatchRecord) Detail() string {
	return fmt.Sprintf("%d/%d", r.Wins, r.Losses)
}

type PlacementRecord struct {
	Score int
}

func (r PlacementRecord) Points() int  { return r.Score }
func (PlacementRecord) Kind() Kind     { return KindElimination }
func (PlacementRecord) isScoreRecord() {}

// ScoreInput holds raw operator input. Only the fields relevant to the active
// event's kind are read.
type ScoreInput struct {
	Wins   string
	Losses string
	Points string
}

// ParseScore validates raw input against an event kind and builds the matching
// record.
func ParseScore(kind Kind, in ScoreInput) (ScoreRecord, error) {
	switch kind {
	case KindTournament:
		winsStr := strings.TrimSpace(in.Wins)
		lossesStr := strings.TrimSpace(in.Losses)
		if winsStr == "" || lossesStr == "" {
			return nil, invalid("wins", "Matches Won/Lost cannot be empty.")
		}
		wins, err := strconv.Atoi(winsStr)
		if err != nil {
			return nil, invalid("wins", "Matches Won/Lost must be numbers.")
		}
		losses, err := strconv.Atoi(lossesStr)
		if err != nil {
			return nil, invalid("losses", "Matches Won/Lost must be numbers.")
		}
		if wins < 0 || losses < 0 {
			return nil, invalid("wins", "Matches Won/Lost cannot be negative.")
		}
		return MatchRecord{Wins: wins, Losses: losses}, nil

	case KindElimination:
		pointsStr := strings.TrimSpace(in.Points)
		if pointsStr == "" {
			return nil, invalid("points", "Final Points cannot be empty.")
		}
		points, err := strconv.Atoi(pointsStr)
		if err != nil {
			return nil, invalid("points", "Points must be a number.")
		}
		if points < 0 {
			return nil, invalid("points", "Points cannot be negative.")
		}
		return PlacementRecord{Score: points}, nil

	default:
		return nil, invalid("kind", "Unknown event type %q.", string(kind))
	}
}
