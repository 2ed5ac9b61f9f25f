package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nydauron/teamscore/tournament"
)

// ScoreForm asks for one team's result in the active event: matches won and
// lost for Tournament events, final points for Elimination events.
type ScoreForm struct {
	Team  string
	Event tournament.EventDefinition

	Done      bool
	Cancelled bool

	prompts []Prompt
	focus   int
	err     error
}

func numberField(question, label, current string) Prompt {
	return NewPrompt(InputData{
		Question:     question,
		DefaultValue: current,
		Parse: func(v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				return fmt.Errorf("%s cannot be empty.", label)
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be a number.", label)
			}
			if n < 0 {
				return fmt.Errorf("%s cannot be negative.", label)
			}
			return nil
		},
	})
}

// NewScoreForm builds the form. A current record, if any, pre-fills the
// answers so pressing enter keeps them.
func NewScoreForm(team string, event tournament.EventDefinition, current tournament.ScoreRecord) ScoreForm {
	m := ScoreForm{Team: team, Event: event}
	switch event.Kind {
	case tournament.KindTournament:
		var wins, losses string
		if rec, ok := current.(tournament.MatchRecord); ok {
			wins, losses = strconv.Itoa(rec.Wins), strconv.Itoa(rec.Losses)
		}
		m.prompts = []Prompt{
			numberField("Matches Won", "Matches Won", wins),
			numberField("Matches Lost", "Matches Lost", losses),
		}
	default:
		var points string
		if current != nil {
			points = strconv.Itoa(current.Points())
		}
		m.prompts = []Prompt{numberField("Final Points", "Points", points)}
	}
	m.prompts[0].Focus()
	return m
}

// Input returns the answers in the shape tournament.ParseScore expects.
func (m ScoreForm) Input() tournament.ScoreInput {
	if m.Event.Kind == tournament.KindTournament {
		return tournament.ScoreInput{Wins: m.prompts[0].GetValue(), Losses: m.prompts[1].GetValue()}
	}
	return tournament.ScoreInput{Points: m.prompts[0].GetValue()}
}

func (m ScoreForm) Err() error {
	return m.err
}

func (m ScoreForm) Init() tea.Cmd {
	return nil
}

func (m ScoreForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	prompts := append([]Prompt(nil), m.prompts...)
	var cmd tea.Cmd
	prompts[m.focus], cmd = prompts[m.focus].Update(msg)
	m.prompts = prompts
	return m, cmd
}

func (m ScoreForm) submit() (tea.Model, tea.Cmd) {
	prompts := append([]Prompt(nil), m.prompts...)
	m.prompts = prompts
	if err := prompts[m.focus].ParseValue(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	if m.focus < len(prompts)-1 {
		prompts[m.focus].Blur()
		m.focus++
		return m, prompts[m.focus].Focus()
	}
	if _, err := tournament.ParseScore(m.Event.Kind, m.Input()); err != nil {
		m.err = err
		return m, nil
	}
	m.Done = true
	return m, tea.Quit
}

func (m ScoreForm) View() string {
	if m.Done || m.Cancelled {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Score for %s - %s\n", m.Team, m.Event.Name)
	for i := 0; i <= m.focus; i++ {
		b.WriteString(m.prompts[i].View())
		b.WriteString("\n")
	}
	if m.err != nil {
		fmt.Fprintf(&b, "❌ %s\n", m.err.Error())
	}
	b.WriteString("\nenter: next • esc: cancel\n")
	return b.String()
}

var ErrCancelled = errors.New("cancelled")

// RunScoreForm runs the form and returns the validated answers, or
// ErrCancelled if the operator backed out.
func RunScoreForm(team string, event tournament.EventDefinition, current tournament.ScoreRecord, in io.Reader, out io.Writer) (tournament.ScoreInput, error) {
	final, err := tea.NewProgram(NewScoreForm(team, event, current), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return tournament.ScoreInput{}, err
	}
	m := final.(ScoreForm)
	if !m.Done {
		return tournament.ScoreInput{}, ErrCancelled
	}
	return m.Input(), nil
}
