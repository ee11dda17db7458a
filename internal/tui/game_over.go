package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const gameOverHeader = 4

// GameOverScene offers a retry once motivation has run out.
type GameOverScene struct {
	m    *Manager
	menu widget.Menu
}

func NewGameOverScene(m *Manager) *GameOverScene {
	s := &GameOverScene{m: m, menu: widget.NewMenu("Retry", "Quit")}
	s.menu.Place(2, gameOverHeader)
	return s
}

func (s *GameOverScene) HandleInput(in widget.Input) tea.Cmd {
	switch s.menu.Handle(in) {
	case 0:
		s.m.Reset(true)
		s.m.ChangeScene(NewTitleScene(s.m))
	case 1:
		return tea.Quit
	}
	return nil
}

func (s *GameOverScene) Update() {}

func (s *GameOverScene) View() string {
	header := block(gameOverHeader,
		defeatStyle.Render("GAME OVER"),
		"",
		textStyle.Render("You ran out of motivation..."),
	)
	return header + "\n" + s.menu.View()
}
