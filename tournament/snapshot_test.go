package tournament

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	s := initialized(t, 2, 4)
	require.NoError(t, s.AddMember("Team 1", "alice"))
	require.NoError(t, s.AddMember("Team 2", "bob"))
	require.NoError(t, s.SelectEvent("Ping Pong Tournament"))
	_, err := s.RecordScore("Team 1", ScoreInput{Wins: "2", Losses: "1"})
	require.NoError(t, err)

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored := New()
	require.NoError(t, restored.Restore(decoded))

	if diff := cmp.Diff(s.Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	team, _ := restored.Team("Team 1")
	require.Equal(t, MatchRecord{Wins: 2, Losses: 1}, team.EventScores["Ping Pong Tournament"])
	require.Equal(t, 7, team.TotalScore)
}

func TestSnapshot_JSONLayout(t *testing.T) {
	s := initialized(t, 1, 4)
	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.ElementsMatch(t, []string{"teams", "event_details", "selected_event", "capacity"}, keys(doc))
	require.Nil(t, doc["selected_event"])
	require.Equal(t, float64(4), doc["capacity"])

	team := doc["teams"].(map[string]any)["Team 1"].(map[string]any)
	require.Equal(t, []any{}, team["members"])
	require.Equal(t, map[string]any{}, team["event_scores"])
	require.Equal(t, float64(0), team["total_score"])

	quiz := doc["event_details"].(map[string]any)["College Quiz"].(map[string]any)
	require.Equal(t, "Elimination", quiz["type"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestRestore_MergesEventCatalog(t *testing.T) {
	s := New()
	err := s.Restore(Snapshot{
		Teams: map[string]TeamSnapshot{},
		EventDetails: map[string]EventSnapshot{
			"Tug of War":   {Type: KindElimination, Description: "Pull."},
			"Spelling Bee": {Type: KindElimination, Description: "Updated text."},
		},
	})
	require.NoError(t, err)

	events := s.Events()
	require.Len(t, events, len(BuiltinEvents)+1)
	for i, builtin := range BuiltinEvents {
		require.Equal(t, builtin.Name, events[i].Name)
	}
	require.Equal(t, "Tug of War", events[len(events)-1].Name)

	bee, ok := s.Event("Spelling Bee")
	require.True(t, ok)
	require.Equal(t, "Updated text.", bee.Description)
}

func TestRestore_RecomputesTotals(t *testing.T) {
	s := New()
	err := s.Restore(Snapshot{
		Teams: map[string]TeamSnapshot{
			"Team 1": {
				Members: []string{"alice"},
				EventScores: map[string]ScoreSnapshot{
					"Ping Pong Tournament": {Wins: intPtr(3), Losses: intPtr(2), Points: 99},
				},
				TotalScore: 1000,
			},
			"Team 2": {TotalScore: 40},
		},
		SelectedEvent: strPtr("Ping Pong Tournament"),
	})
	require.NoError(t, err)

	one, _ := s.Team("Team 1")
	require.Equal(t, 11, one.TotalScore)
	two, _ := s.Team("Team 2")
	require.Zero(t, two.TotalScore)
	require.NotNil(t, two.Members)
}

func TestRestore_SavedCapacity(t *testing.T) {
	s := initialized(t, 2, 2)
	require.NoError(t, s.AddMember("Team 1", "alice"))

	restored := New(WithCapacity(4))
	require.NoError(t, restored.Restore(s.Snapshot()))
	require.Equal(t, 2, restored.Capacity())

	require.NoError(t, restored.AddMember("Team 1", "bob"))
	err := restored.AddMember("Team 1", "carol")
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, "Team 1 already has 2 members.")
}

func TestRestore_WithoutSavedCapacity(t *testing.T) {
	cases := []struct {
		name    string
		members []string
		want    int
	}{
		{name: "roster fits configured", members: []string{"a"}, want: 4},
		{name: "roster larger than configured", members: []string{"a", "b", "c", "d", "e", "f"}, want: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(WithCapacity(4))
			require.NoError(t, s.Restore(Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {Members: tc.members}}}))
			require.Equal(t, tc.want, s.Capacity())
		})
	}
}

func TestRestore_RejectsAndKeepsState(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "unknown selected event",
			snap: Snapshot{SelectedEvent: strPtr("Chess Boxing")},
		},
		{
			name: "numeric member",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {Members: []string{"42"}}}},
		},
		{
			name: "duplicate member",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {Members: []string{"a", "a"}}}},
		},
		{
			name: "over saved capacity",
			snap: Snapshot{Capacity: 4, Teams: map[string]TeamSnapshot{"Team 1": {Members: []string{"a", "b", "c", "d", "e"}}}},
		},
		{
			name: "negative capacity",
			snap: Snapshot{Capacity: -1},
		},
		{
			name: "numeric team",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"7": {}}},
		},
		{
			name: "negative points",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {EventScores: map[string]ScoreSnapshot{"Spelling Bee": {Points: -1}}}}},
		},
		{
			name: "wins without losses",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {EventScores: map[string]ScoreSnapshot{"Ping Pong Tournament": {Wins: intPtr(1)}}}}},
		},
		{
			name: "record kind mismatch",
			snap: Snapshot{Teams: map[string]TeamSnapshot{"Team 1": {EventScores: map[string]ScoreSnapshot{"Spelling Bee": {Wins: intPtr(1), Losses: intPtr(1)}}}}},
		},
		{
			name: "bad event type",
			snap: Snapshot{EventDetails: map[string]EventSnapshot{"Darts": {Type: "League"}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := initialized(t, 2, 4)
			require.NoError(t, s.AddMember("Team 1", "alice"))
			before := s.Snapshot()

			err := s.Restore(tc.snap)
			require.ErrorIs(t, err, ErrPersistence)

			if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
				t.Fatalf("state changed after rejected restore (-want +got):\n%s", diff)
			}
		})
	}
}
