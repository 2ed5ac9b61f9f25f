package tournament

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		in      ScoreInput
		want    ScoreRecord
		wantErr string
	}{
		{name: "wins and losses", kind: KindTournament, in: ScoreInput{Wins: "3", Losses: "2"}, want: MatchRecord{Wins: 3, Losses: 2}},
		{name: "padded input", kind: KindTournament, in: ScoreInput{Wins: " 0 ", Losses: "4"}, want: MatchRecord{Losses: 4}},
		{name: "missing wins", kind: KindTournament, in: ScoreInput{Losses: "4"}, wantErr: "Matches Won/Lost cannot be empty."},
		{name: "word wins", kind: KindTournament, in: ScoreInput{Wins: "three", Losses: "4"}, wantErr: "Matches Won/Lost must be numbers."},
		{name: "negative losses", kind: KindTournament, in: ScoreInput{Wins: "1", Losses: "-4"}, wantErr: "Matches Won/Lost cannot be negative."},
		{name: "points", kind: KindElimination, in: ScoreInput{Points: "50"}, want: PlacementRecord{Score: 50}},
		{name: "missing points", kind: KindElimination, in: ScoreInput{}, wantErr: "Final Points cannot be empty."},
		{name: "word points", kind: KindElimination, in: ScoreInput{Points: "lots"}, wantErr: "Points must be a number."},
		{name: "negative points", kind: KindElimination, in: ScoreInput{Points: "-1"}, wantErr: "Points cannot be negative."},
		{name: "unknown kind", kind: "League", in: ScoreInput{Points: "1"}, wantErr: `Unknown event type "League".`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScore(tc.kind, tc.in)
			if tc.wantErr != "" {
				require.ErrorIs(t, err, ErrValidation)
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.kind, got.Kind())
		})
	}
}

func TestMatchRecordPoints(t *testing.T) {
	require.Equal(t, 11, MatchRecord{Wins: 3, Losses: 2}.Points())
	require.Equal(t, 0, MatchRecord{}.Points())
	require.Equal(t, "3/2", MatchRecord{Wins: 3, Losses: 2}.Detail())
}

func TestScoreSavedMessage(t *testing.T) {
	require.Equal(t,
		"Saved: Team 1 - Ping Pong Tournament (Wins: 3, Losses: 2, Points: 11)",
		ScoreSavedMessage("Team 1", "Ping Pong Tournament", MatchRecord{Wins: 3, Losses: 2}))
	require.Equal(t,
		"Saved: Team 2 - College Quiz (Points: 50)",
		ScoreSavedMessage("Team 2", "College Quiz", PlacementRecord{Score: 50}))
}

func TestCompareNames(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"Team 2", "Team 10", -1},
		{"Team 10", "Team 2", 1},
		{"Team 1", "Team 1", 0},
		{"Alpha", "Beta", -1},
		{"Team", "Team 1", -1},
		{"Team 007", "Team 8", -1},
		{"Team 01", "Team 1", -1},
		{"Team 1", "Team 01", 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CompareNames(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}
