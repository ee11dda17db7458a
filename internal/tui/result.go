package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/models"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

// BattleResultScene summarizes a finished battle.
type BattleResultScene struct {
	m        *Manager
	guardian models.Guardian
	outcome  engine.Outcome
	lines    []string
	menu     widget.Menu
}

func NewBattleResultScene(m *Manager, g models.Guardian, outcome engine.Outcome) *BattleResultScene {
	s := &BattleResultScene{
		m:        m,
		guardian: g,
		outcome:  outcome,
		lines:    resultLines(m, g, outcome),
		menu:     widget.NewMenu("Continue"),
	}
	s.menu.Shortcuts = false
	s.menu.Place(2, len(s.lines)+3)
	return s
}

func resultLines(m *Manager, g models.Guardian, outcome engine.Outcome) []string {
	switch outcome {
	case engine.OutcomeVictory:
		total := len(m.Catalog().Guardians)
		return []string{
			fmt.Sprintf("You cleared the trial of %s!", g.Name),
			"",
			fmt.Sprintf("\"I acknowledge your mastery of %s.\"", g.Service),
			"",
			fmt.Sprintf("AWS knowledge increased by %d points!", engine.VictoryKnowledge),
			fmt.Sprintf("Trials remaining: %d/%d", total-len(m.Progress().CompletedTrials()), total),
		}
	case engine.OutcomeDefeat:
		return []string{
			fmt.Sprintf("You were defeated by %s...", g.Name),
			"",
			"Your motivation ran out, but you can always try again.",
			"",
			fmt.Sprintf("Next time, study %s before the challenge.", g.Weakness),
		}
	}
	return []string{
		fmt.Sprintf("You ran away from %s.", g.Name),
		"",
		"Get ready and challenge the guardian again.",
		"",
		fmt.Sprintf("Hint: %s's weakness is %s.", g.Name, g.Weakness),
	}
}

func (s *BattleResultScene) Outcome() engine.Outcome { return s.outcome }

func (s *BattleResultScene) Lines() []string { return s.lines }

func (s *BattleResultScene) HandleInput(in widget.Input) tea.Cmd {
	if in.IsContinue() || s.menu.Handle(in) == 0 {
		s.m.ChangeScene(NewMapScene(s.m))
	}
	return nil
}

func (s *BattleResultScene) Update() {}

func (s *BattleResultScene) View() string {
	var title string
	var style lipgloss.Style
	switch s.outcome {
	case engine.OutcomeVictory:
		title, style = "Victory!", victoryStyle
	case engine.OutcomeDefeat:
		title, style = "Defeat...", defeatStyle
	default:
		title, style = "Escaped", escapeStyle
	}

	rows := []string{style.Render(title), ""}
	for _, l := range s.lines {
		rows = append(rows, textStyle.Render(l))
	}
	return block(len(s.lines)+3, rows...) + "\n" + s.menu.View() + "\n\n" + helpStyle.Render("space or click to continue")
}
