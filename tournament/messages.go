package tournament

import (
	"fmt"
	"strings"
)

// Operator-facing texts. Front ends print these as-is so every interface
// asks and reports the same way.

func InitializePrompt(count int) string {
	return fmt.Sprintf("This will reset all existing team data and member data. Do you want to initialise %d empty teams?", count)
}

func SelectEventPrompt(event string) string {
	return fmt.Sprintf("Are you sure you want to select '%s' as the primary event for this tournament? This will clear all existing event scores if you previously scored for other events.", event)
}

func OverwritePrompt(team, event string) string {
	return fmt.Sprintf("'%s' already has a score for '%s'. Overwrite?", team, event)
}

func InitializedMessage(count int) string {
	return fmt.Sprintf("%d default teams initialised.", count)
}

func MemberAddedMessage(member, team string) string {
	return fmt.Sprintf("'%s' added to %s.", member, team)
}

func MemberRemovedMessage(member, team string) string {
	return fmt.Sprintf("'%s' removed from %s.", member, team)
}

func EventSelectedMessage(event string) string {
	return fmt.Sprintf("'%s' selected as current event.", event)
}

func CurrentEventLabel(event string) string {
	if event == "" {
		return "Current Event: Not Selected"
	}
	return "Current Event: " + event
}

// MembersLabel renders "Current Members (2/4): alice, bob".
func MembersLabel(t TeamSummary) string {
	list := "None"
	if len(t.Members) > 0 {
		list = strings.Join(t.Members, ", ")
	}
	return fmt.Sprintf("Current Members (%d/%d): %s", t.MemberCount, t.Capacity, list)
}

func ScoreSavedMessage(team, event string, rec ScoreRecord) string {
	switch r := rec.(type) {
	case MatchRecord:
		return fmt.Sprintf("Saved: %s - %s (Wins: %d, Losses: %d, Points: %d)", team, event, r.Wins, r.Losses, r.Points())
	default:
		return fmt.Sprintf("Saved: %s - %s (Points: %d)", team, event, rec.Points())
	}
}

const OverwriteCancelledMessage = "Score not saved (overwrite cancelled)."
const SelectionCancelledMessage = "Event selection cancelled."
