package tournament

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Snapshot is the serializable form of a State. The JSON layout is the
// on-disk format of the data file. Capacity is zero in files written before
// it was saved.
type Snapshot struct {
	Teams         map[string]TeamSnapshot  `json:"teams" yaml:"teams"`
	EventDetails  map[string]EventSnapshot `json:"event_details" yaml:"event_details"`
	SelectedEvent *string                  `json:"selected_event" yaml:"selected_event"`
	Capacity      int                      `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

type TeamSnapshot struct {
	Members     []string                 `json:"members" yaml:"members"`
	EventScores map[string]ScoreSnapshot `json:"event_scores" yaml:"event_scores"`
	TotalScore  int                      `json:"total_score" yaml:"total_score"`
}

// ScoreSnapshot carries wins and losses only for Tournament events.
type ScoreSnapshot struct {
	Wins   *int `json:"wins,omitempty" yaml:"wins,omitempty"`
	Losses *int `json:"losses,omitempty" yaml:"losses,omitempty"`
	Points int  `json:"points" yaml:"points"`
}

type EventSnapshot struct {
	Type        Kind   `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

func snapshotScore(r ScoreRecord) ScoreSnapshot {
	switch rec := r.(type) {
	case MatchRecord:
		wins, losses := rec.Wins, rec.Losses
		return ScoreSnapshot{Wins: &wins, Losses: &losses, Points: rec.Points()}
	default:
		return ScoreSnapshot{Points: r.Points()}
	}
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Teams:        make(map[string]TeamSnapshot, len(s.teams)),
		EventDetails: make(map[string]EventSnapshot, len(s.events.order)),
		Capacity:     s.capacity,
	}
	for name, t := range s.teams {
		ts := TeamSnapshot{
			Members:     append([]string{}, t.Members...),
			EventScores: make(map[string]ScoreSnapshot, len(t.EventScores)),
			TotalScore:  t.TotalScore,
		}
		for event, rec := range t.EventScores {
			ts.EventScores[event] = snapshotScore(rec)
		}
		snap.Teams[name] = ts
	}
	for _, e := range s.events.list() {
		snap.EventDetails[e.Name] = EventSnapshot{Type: e.Kind, Description: e.Description}
	}
	if s.active != "" {
		active := s.active
		snap.SelectedEvent = &active
	}
	return snap
}

func restoreScore(team, event string, ss ScoreSnapshot) (ScoreRecord, error) {
	if ss.Wins != nil || ss.Losses != nil {
		if ss.Wins == nil || ss.Losses == nil {
			return nil, fmt.Errorf("team %q event %q: wins and losses must both be set", team, event)
		}
		if *ss.Wins < 0 || *ss.Losses < 0 {
			return nil, fmt.Errorf("team %q event %q: negative wins/losses", team, event)
		}
		return MatchRecord{Wins: *ss.Wins, Losses: *ss.Losses}, nil
	}
	if ss.Points < 0 {
		return nil, fmt.Errorf("team %q event %q: negative points", team, event)
	}
	return PlacementRecord{Score: ss.Points}, nil
}

// Restore replaces the roster, active event and scores with the snapshot's,
// and merges its event definitions into the catalog. The whole snapshot is
// checked first; on error the State is unchanged and the error is a
// *PersistenceError. Team totals are recomputed from the active event's
// record rather than trusted. A saved capacity replaces the configured one;
// without it the configured capacity is raised to fit the largest roster.
func (s *State) Restore(snap Snapshot) error {
	next, err := s.restored(snap)
	if err != nil {
		return &PersistenceError{Op: "restore", Err: err}
	}
	*s = *next
	return nil
}

func (s *State) restored(snap Snapshot) (*State, error) {
	events := s.events.clone()
	extra := make([]string, 0, len(snap.EventDetails))
	for name := range snap.EventDetails {
		if _, builtin := events.get(name); !builtin {
			extra = append(extra, name)
		}
	}
	slices.SortFunc(extra, CompareNames)
	for name, es := range snap.EventDetails {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("event with empty name")
		}
		if !es.Type.Valid() {
			return nil, fmt.Errorf("event %q: unknown type %q", name, es.Type)
		}
	}
	// built-ins keep their slot; unknown names are appended in name order
	for name, es := range snap.EventDetails {
		if _, ok := events.get(name); ok {
			events.put(EventDefinition{Name: name, Kind: es.Type, Description: es.Description})
		}
	}
	for _, name := range extra {
		es := snap.EventDetails[name]
		events.put(EventDefinition{Name: name, Kind: es.Type, Description: es.Description})
	}

	active := ""
	if snap.SelectedEvent != nil && *snap.SelectedEvent != "" {
		if _, ok := events.get(*snap.SelectedEvent); !ok {
			return nil, fmt.Errorf("selected event %q is not a known event", *snap.SelectedEvent)
		}
		active = *snap.SelectedEvent
	}

	if snap.Capacity < 0 {
		return nil, fmt.Errorf("negative capacity %d", snap.Capacity)
	}
	capacity := snap.Capacity
	if capacity == 0 {
		capacity = s.capacity
		for _, ts := range snap.Teams {
			capacity = max(capacity, len(ts.Members))
		}
	}
	teams := make(map[string]*Team, len(snap.Teams))
	for name, ts := range snap.Teams {
		if err := validateTeamName(name); err != nil {
			return nil, fmt.Errorf("team %q: %w", name, err)
		}
		t := newTeam(name)
		for _, m := range ts.Members {
			if err := validateMemberName(m); err != nil {
				return nil, fmt.Errorf("team %q member %q: %w", name, m, err)
			}
			if slices.Contains(t.Members, m) {
				return nil, fmt.Errorf("team %q: duplicate member %q", name, m)
			}
			t.Members = append(t.Members, m)
		}
		if len(t.Members) > capacity {
			return nil, fmt.Errorf("team %q has %d members, capacity is %d", name, len(t.Members), capacity)
		}
		for event, ss := range ts.EventScores {
			rec, err := restoreScore(name, event, ss)
			if err != nil {
				return nil, err
			}
			if def, ok := events.get(event); ok && def.Kind != rec.Kind() {
				return nil, fmt.Errorf("team %q event %q: %s record for a %s event", name, event, rec.Kind(), def.Kind)
			}
			t.EventScores[event] = rec
		}
		if rec, ok := t.EventScores[active]; ok && active != "" {
			t.TotalScore = rec.Points()
		}
		teams[name] = t
	}

	return &State{
		teams:    teams,
		events:   events,
		active:   active,
		capacity: capacity,
	}, nil
}
