package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const titleHeader = 4

var creditLines = []string{
	"Amazon Forest Quest: The Treasure and the Seven AWS Guardians",
	"",
	"Development: the Forest Quest team",
	"Terminal rendering: Bubble Tea and Lip Gloss",
	"",
	"This game is meant for learning AWS services.",
}

// TitleScene is the first screen: start, credits, exit.
type TitleScene struct {
	m              *Manager
	menu           widget.Menu
	showingCredits bool
}

func NewTitleScene(m *Manager) *TitleScene {
	s := &TitleScene{m: m, menu: widget.NewMenu("Start Game", "Credits", "Exit")}
	s.menu.Place(2, titleHeader)
	return s
}

func (s *TitleScene) HandleInput(in widget.Input) tea.Cmd {
	if s.showingCredits {
		s.showingCredits = false
		return nil
	}

	switch s.menu.Handle(in) {
	case 0:
		s.m.ChangeScene(NewNameInputScene(s.m))
	case 1:
		s.showingCredits = true
	case 2:
		return tea.Quit
	}
	return nil
}

// ShowingCredits reports whether the credits overlay is open.
func (s *TitleScene) ShowingCredits() bool { return s.showingCredits }

func (s *TitleScene) Update() {}

func (s *TitleScene) View() string {
	if s.showingCredits {
		lines := append([]string{titleStyle.Render("Credits"), ""}, creditLines...)
		lines = append(lines, "", helpStyle.Render("Press any key or click to return"))
		return overlay(lines...)
	}

	header := block(titleHeader,
		titleStyle.Render(s.m.Catalog().Title),
		"",
		subtitleStyle.Render("Set out on an adventure through the world of AWS services!"),
	)
	return header + "\n" + s.menu.View() + "\n\n" + helpStyle.Render("↑/↓ to move, enter or click to choose")
}
