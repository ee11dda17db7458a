package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const rumorTimeout = 10 * time.Second

// rumorMsg carries a narrator line back to the event scene that asked for it.
type rumorMsg struct {
	scene int
	line  string
	err   error
}

// EventScene shows the text of a non-battle encounter.
type EventScene struct {
	m       *Manager
	id      int
	enc     engine.Encounter
	lines   []string
	menu    widget.Menu
	waiting bool
}

func NewEventScene(m *Manager, enc engine.Encounter) *EventScene {
	s := &EventScene{
		m:     m,
		id:    m.id(),
		enc:   enc,
		lines: append([]string(nil), enc.Lines...),
		menu:  widget.NewMenu("Continue"),
	}
	s.menu.Shortcuts = false
	s.menu.Place(2, s.header())
	return s
}

func (s *EventScene) header() int {
	// title, blank, lines, optional rumor, blank
	return len(s.enc.Lines) + 4
}

// Init asks the narrator for a rumor about the guardian of a hint.
func (s *EventScene) Init() tea.Cmd {
	if s.enc.Kind != engine.EncounterHint || s.m.narrator == nil {
		return nil
	}
	s.waiting = true
	narrator, area, g, id := s.m.narrator, s.enc.Area, s.enc.Guardian, s.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rumorTimeout)
		defer cancel()
		line, err := narrator.Rumor(ctx, area, g)
		return rumorMsg{scene: id, line: line, err: err}
	}
}

func (s *EventScene) HandleMsg(msg tea.Msg) tea.Cmd {
	r, ok := msg.(rumorMsg)
	if !ok || r.scene != s.id {
		return nil
	}
	s.waiting = false
	if r.err != nil {
		s.m.log.Warn().Err(r.err).Str("guardian", s.enc.Guardian.Name).Msg("narrator failed")
		return nil
	}
	s.lines = append(s.lines, fmt.Sprintf("\"%s\"", r.line))
	return nil
}

// Lines is the text currently shown.
func (s *EventScene) Lines() []string { return s.lines }

func (s *EventScene) HandleInput(in widget.Input) tea.Cmd {
	if in.IsContinue() || s.menu.Handle(in) == 0 {
		s.m.ChangeScene(NewMapScene(s.m))
	}
	return nil
}

func (s *EventScene) Update() {}

func (s *EventScene) View() string {
	rows := []string{titleStyle.Render(s.enc.Title), ""}
	for _, l := range s.lines {
		rows = append(rows, textStyle.Render(l))
	}
	if s.waiting {
		rows = append(rows, helpStyle.Render("The traveler leans in closer..."))
	}
	return block(s.header(), rows...) + "\n" + s.menu.View() + "\n\n" + helpStyle.Render("space or click to continue")
}
