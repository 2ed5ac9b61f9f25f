package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nydauron/teamscore/tournament"
)

// EventPicker lets the operator choose the active event. Number keys jump to
// an event, arrows move, enter confirms and esc cancels.
type EventPicker struct {
	Chosen    string
	Cancelled bool

	active string
	input  Selection
}

func NewEventPicker(events []tournament.EventDefinition, active string) EventPicker {
	options := make([]SelectionOption, len(events))
	selected := 0
	for i, e := range events {
		text := fmt.Sprintf("%s (%s)", e.Name, e.Kind)
		if e.Name == active {
			text += " - current"
			selected = i
		}
		options[i] = SelectionOption{Key: e.Name, DisplayText: text}
	}
	return EventPicker{active: active, input: NewSelection(options, selected, false)}
}

func (m EventPicker) Init() tea.Cmd {
	return nil
}

func (m EventPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key := keyMsg.String(); key {
	case "ctrl+c", "esc", "q":
		m.Cancelled = true
		return m, tea.Quit
	case "enter":
		if name, ok := m.input.GetKey(); ok {
			m.Chosen = name
			return m, tea.Quit
		}
	case "up", "k":
		m.input, _ = m.input.Update(UpdateSelection{Idx: m.input.Selected() - 1})
	case "down", "j":
		m.input, _ = m.input.Update(UpdateSelection{Idx: m.input.Selected() + 1})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(key)
		m.input, _ = m.input.Update(UpdateSelection{Idx: idx - 1})
	}
	return m, nil
}

func (m EventPicker) View() string {
	if m.Chosen != "" || m.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString("Select an event:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n1-9/↑/↓: choose • enter: select • esc: cancel\n")
	return b.String()
}

// RunEventPicker shows the picker and returns the chosen event name. ok is
// false when the operator cancelled.
func RunEventPicker(events []tournament.EventDefinition, active string, in io.Reader, out io.Writer) (string, bool, error) {
	final, err := tea.NewProgram(NewEventPicker(events, active), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", false, err
	}
	m := final.(EventPicker)
	return m.Chosen, !m.Cancelled && m.Chosen != "", nil
}
