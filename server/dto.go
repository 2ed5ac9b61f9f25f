package server

import "github.com/Nydauron/teamscore/tournament"

type teamDTO struct {
	Name     string   `json:"name"`
	Members  []string `json:"members"`
	Capacity int      `json:"capacity"`
	Score    int      `json:"score"`
	Scored   bool     `json:"scored"`
}

type eventDTO struct {
	Name        string          `json:"name"`
	Type        tournament.Kind `json:"type"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
}

type statusDTO struct {
	CurrentEvent *string   `json:"current_event"`
	EventType    string    `json:"event_type,omitempty"`
	Teams        []teamDTO `json:"teams"`
}

func toTeamDTO(t tournament.TeamSummary) teamDTO {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return teamDTO{Name: t.Name, Members: members, Capacity: t.Capacity, Score: t.Score, Scored: t.Scored}
}

func toStatusDTO(sum tournament.Summary) statusDTO {
	out := statusDTO{Teams: make([]teamDTO, 0, len(sum.Teams))}
	if sum.ActiveEvent != "" {
		event := sum.ActiveEvent
		out.CurrentEvent = &event
		out.EventType = string(sum.EventKind)
	}
	for _, t := range sum.Teams {
		out.Teams = append(out.Teams, toTeamDTO(t))
	}
	return out
}

type errorDTO struct {
	Error string `json:"error"`
}
