package tournament

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DefaultTeamCount = 5
	DefaultCapacity  = 4
)

type Team struct {
	Name        string
	Members     []string
	EventScores map[string]ScoreRecord
	TotalScore  int
}

func newTeam(name string) *Team {
	return &Team{
		Name:        name,
		Members:     []string{},
		EventScores: map[string]ScoreRecord{},
	}
}

func (t *Team) clone() *Team {
	out := &Team{
		Name:        t.Name,
		Members:     append([]string{}, t.Members...),
		EventScores: make(map[string]ScoreRecord, len(t.EventScores)),
		TotalScore:  t.TotalScore,
	}
	for k, v := range t.EventScores {
		out.EventScores[k] = v
	}
	return out
}

// State is the whole tournament: roster, event catalog, active event and
// recorded scores. It is owned by a single caller and is not safe for
// concurrent use. Every operation validates fully before mutating, so a
// returned error means nothing changed.
type State struct {
	teams    map[string]*Team
	events   catalog
	active   string
	capacity int
}

type Option func(*State)

// WithCapacity sets the member capacity used until the next InitializeTeams.
func WithCapacity(capacity int) Option {
	return func(s *State) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

func New(opts ...Option) *State {
	s := &State{
		teams:    map[string]*Team{},
		events:   newCatalog(),
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clone returns a deep copy that can be mutated independently.
func (s *State) Clone() *State {
	out := &State{
		teams:    make(map[string]*Team, len(s.teams)),
		events:   s.events.clone(),
		active:   s.active,
		capacity: s.capacity,
	}
	for name, t := range s.teams {
		out.teams[name] = t.clone()
	}
	return out
}

func (s *State) Capacity() int {
	return s.capacity
}

// WouldDiscardTeams reports whether InitializeTeams would throw away existing
// teams. Callers use it to decide whether to ask for confirmation.
func (s *State) WouldDiscardTeams() bool {
	return len(s.teams) > 0
}

// InitializeTeams replaces every team with count empty teams named "Team 1"
// through "Team <count>". This is irreversible: members and scores of the
// previous roster are lost, so callers must confirm before calling it.
func (s *State) InitializeTeams(count, capacity int) error {
	if count < 1 {
		return invalid("count", "Number of teams must be at least 1.")
	}
	if capacity < 1 {
		return invalid("capacity", "Members per team must be at least 1.")
	}

	teams := make(map[string]*Team, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("Team %d", i)
		teams[name] = newTeam(name)
	}
	s.teams = teams
	s.capacity = capacity
	return nil
}

func (s *State) team(name string) (*Team, error) {
	t, ok := s.teams[name]
	if !ok {
		return nil, &NotFoundError{Kind: "team", Name: name}
	}
	return t, nil
}

// AddMember appends a trimmed member name to a team.
func (s *State) AddMember(teamName, member string) error {
	t, err := s.team(teamName)
	if err != nil {
		return err
	}
	member = strings.TrimSpace(member)
	if err := validateMemberName(member); err != nil {
		return err
	}
	if slices.Contains(t.Members, member) {
		return invalid("member", "'%s' is already in %s.", member, t.Name)
	}
	if len(t.Members) >= s.capacity {
		return invalid("member", "%s already has %d members.", t.Name, s.capacity)
	}
	t.Members = append(t.Members, member)
	return nil
}

func (s *State) RemoveMember(teamName, member string) error {
	t, err := s.team(teamName)
	if err != nil {
		return err
	}
	member = strings.TrimSpace(member)
	if member == "" {
		return invalid("member", "Member name cannot be empty.")
	}
	idx := slices.Index(t.Members, member)
	if idx < 0 {
		return &NotFoundError{Kind: "member", Name: member, Scope: t.Name}
	}
	t.Members = slices.Delete(t.Members, idx, idx+1)
	return nil
}

// WouldResetScores reports whether SelectEvent would discard any recorded
// score.
func (s *State) WouldResetScores() bool {
	for _, t := range s.teams {
		if len(t.EventScores) > 0 || t.TotalScore != 0 {
			return true
		}
	}
	return false
}

// SelectEvent makes name the active event and clears every team's scores,
// including scores already recorded for name itself. Callers must confirm
// before calling it.
func (s *State) SelectEvent(name string) error {
	if _, ok := s.events.get(name); !ok {
		return &NotFoundError{Kind: "event", Name: name}
	}
	s.active = name
	for _, t := range s.teams {
		t.EventScores = map[string]ScoreRecord{}
		t.TotalScore = 0
	}
	return nil
}

func (s *State) HasScore(teamName, event string) bool {
	t, ok := s.teams[teamName]
	if !ok {
		return false
	}
	_, ok = t.EventScores[event]
	return ok
}

// WouldOverwrite reports whether RecordScore for the team would replace an
// existing record for the active event.
func (s *State) WouldOverwrite(teamName string) bool {
	return s.active != "" && s.HasScore(teamName, s.active)
}

// RecordScore parses the input for the active event's kind and stores it as
// the team's result, replacing any previous record without asking. The team's
// total becomes the record's points.
func (s *State) RecordScore(teamName string, in ScoreInput) (ScoreRecord, error) {
	if s.active == "" {
		return nil, ErrNoActiveEvent
	}
	t, err := s.team(teamName)
	if err != nil {
		return nil, err
	}
	event, _ := s.events.get(s.active)
	rec, err := ParseScore(event.Kind, in)
	if err != nil {
		return nil, err
	}
	t.EventScores[event.Name] = rec
	t.TotalScore = rec.Points()
	return rec, nil
}

// ActiveEvent returns the selected event, if any.
func (s *State) ActiveEvent() (EventDefinition, bool) {
	if s.active == "" {
		return EventDefinition{}, false
	}
	return s.events.get(s.active)
}

func (s *State) Event(name string) (EventDefinition, bool) {
	return s.events.get(name)
}

// Events lists the catalog: built-ins first, then merged definitions in the
// order they were added.
func (s *State) Events() []EventDefinition {
	return s.events.list()
}

// Team returns a copy of the named team.
func (s *State) Team(name string) (Team, bool) {
	t, ok := s.teams[name]
	if !ok {
		return Team{}, false
	}
	return *t.clone(), true
}

// Teams returns copies of all teams ordered by CompareNames.
func (s *State) Teams() []Team {
	out := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, *t.clone())
	}
	slices.SortFunc(out, func(a, b Team) int {
		return CompareNames(a.Name, b.Name)
	})
	return out
}

func (s *State) TeamNames() []string {
	teams := s.Teams()
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	return names
}

type TeamSummary struct {
	Name        string
	MemberCount int
	Capacity    int
	Members     []string
	Score       int
	Scored      bool
}

type Summary struct {
	ActiveEvent string
	EventKind   Kind
	Teams       []TeamSummary
}

// Summary collects what a front end shows on its status line.
func (s *State) Summary() Summary {
	sum := Summary{}
	if e, ok := s.ActiveEvent(); ok {
		sum.ActiveEvent = e.Name
		sum.EventKind = e.Kind
	}
	for _, t := range s.Teams() {
		_, scored := t.EventScores[s.active]
		sum.Teams = append(sum.Teams, TeamSummary{
			Name:        t.Name,
			MemberCount: len(t.Members),
			Capacity:    s.capacity,
			Members:     t.Members,
			Score:       t.TotalScore,
			Scored:      s.active != "" && scored,
		})
	}
	return sum
}
