package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type UpdateSelection struct {
	Idx int
}

// Selection is a list of options with at most one marked.
type Selection struct {
	selections []SelectionOption

	selected      int
	displayInline bool
}

type SelectionOption struct {
	Key         string
	DisplayText string
}

func NewSelection(options []SelectionOption, selected int, inline bool) Selection {
	return Selection{selections: options, selected: selected, displayInline: inline}
}

func (m Selection) GetKey() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.selections) {
		return "", false
	}
	return m.selections[m.selected].Key, true
}

func (m Selection) Selected() int {
	return m.selected
}

func (m Selection) Init() tea.Cmd {
	return nil
}

func (m Selection) Update(msg tea.Msg) (Selection, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateSelection:
		if msg.Idx >= 0 && msg.Idx < len(m.selections) {
			m.selected = msg.Idx
		}
		return m, nil
	}
	return m, nil
}

func (m Selection) View() string {
	selectionStrArr := make([]string, len(m.selections))
	for i, selection := range m.selections {
		marker := " "
		if i == m.selected {
			marker = "x"
		}
		selectionStrArr[i] = fmt.Sprintf("[%s] %d. %s", marker, i+1, selection.DisplayText)
	}
	if m.displayInline {
		return strings.Join(selectionStrArr, " ")
	}
	return strings.Join(selectionStrArr, "\n")
}
