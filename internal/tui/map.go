package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const mapHeader = 6

// MapScene is the hub: pick an area to explore, or look at the inventory.
type MapScene struct {
	m                *Manager
	areas            []string
	menu             widget.Menu
	showingInventory bool
}

func NewMapScene(m *Manager) *MapScene {
	s := &MapScene{m: m, areas: m.Catalog().AllAreas()}
	s.menu = widget.NewMenu(s.labels()...)
	s.menu.Place(2, mapHeader)
	return s
}

func (s *MapScene) labels() []string {
	labels := make([]string, 0, len(s.areas)+1)
	for _, area := range s.areas {
		if g, ok := s.m.Catalog().GuardianByArea(area); ok && s.m.Progress().HasCompleted(g.Name) {
			area += " (cleared)"
		}
		labels = append(labels, area)
	}
	return append(labels, "Inventory")
}

func (s *MapScene) HandleInput(in widget.Input) tea.Cmd {
	if s.showingInventory {
		if in.Kind != widget.InputOther {
			s.showingInventory = false
		}
		return nil
	}

	i := s.menu.Handle(in)
	switch {
	case i < 0:
	case i < len(s.areas):
		s.explore(s.areas[i])
	default:
		s.showingInventory = true
	}
	return nil
}

func (s *MapScene) explore(area string) {
	enc := s.m.resolver().Explore(area)
	if enc.Kind == engine.EncounterBattle {
		s.m.ChangeScene(NewBattleScene(s.m, enc.Guardian))
		return
	}
	s.m.ChangeScene(NewEventScene(s.m, enc))
}

func (s *MapScene) Update() {
	switch {
	case s.m.IsGameOver():
		s.m.ChangeScene(NewGameOverScene(s.m))
	case s.m.IsGameComplete():
		s.m.ChangeScene(NewEndingScene(s.m))
	}
}

func (s *MapScene) View() string {
	p := s.m.Progress()
	if s.showingInventory {
		return s.inventoryView(p)
	}

	st := p.Stats()
	header := block(mapHeader,
		titleStyle.Render("Amazon Forest Map"),
		textStyle.Render(fmt.Sprintf("Adventurer: %s   Level: %d   Trials cleared: %d/%d",
			st.Name, st.Level, len(p.CompletedTrials()), len(s.m.Catalog().Guardians))),
		widget.NewStatusBar("Motivation", st.Motivation, engine.InitialMotivation, motivationColor).View(),
		widget.NewStatusBar("AWS Knowledge", st.Knowledge%engine.KnowledgePerLevel, engine.KnowledgePerLevel, knowledgeColor).View(),
		widget.NewStatusBar("Concentration", st.Concentration, engine.InitialConcentration, concentrationColor).View(),
	)
	return header + "\n" + s.menu.View() + "\n\n" + helpStyle.Render("pick an area to explore")
}

func (s *MapScene) inventoryView(p *engine.Progress) string {
	lines := []string{titleStyle.Render("Inventory"), ""}
	items := p.Items()
	if len(items) == 0 {
		lines = append(lines, "You have no items.")
	}
	for _, name := range items {
		if item, ok := s.m.Catalog().ItemByName(name); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", name, item.Description))
		} else {
			lines = append(lines, name)
		}
	}
	lines = append(lines, "", helpStyle.Render("Press any key or click to close"))
	return overlay(lines...)
}
