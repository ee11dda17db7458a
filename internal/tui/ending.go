package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

// EndingScene is the epilogue after every trial is cleared.
type EndingScene struct {
	m              *Manager
	story          storyPane
	menu           widget.Menu
	showingCredits bool
}

func NewEndingScene(m *Manager) *EndingScene {
	name := m.Progress().Name()
	s := &EndingScene{
		m: m,
		story: newStoryPane(
			fmt.Sprintf("At last, %s has cleared the trials of all seven AWS Guardians.", name),
			"",
			"As the last guardian faded, a dazzling light burst from the heart of the forest,",
			"and the legendary treasure \"Infinite Scalability\" revealed itself.",
			"",
			"It was no mere object. It was the very essence of AWS.",
			"",
			"They say the adventurer who claimed \"Infinite Scalability\"",
			"understood the true power of the cloud and could overcome any challenge.",
			"",
			fmt.Sprintf("%s's adventure is over,", name),
			"but new adventures in the world of AWS go on...",
		),
		menu: widget.NewMenu("Credits", "Back to Title"),
	}
	s.menu.Place(2, storyHeader)
	return s
}

func (s *EndingScene) HandleInput(in widget.Input) tea.Cmd {
	if s.showingCredits {
		s.showingCredits = false
		return nil
	}
	if !s.story.tw.Done() {
		if in.Kind == widget.InputClick || in.IsContinue() {
			s.story.complete()
		}
		return nil
	}

	switch s.menu.Handle(in) {
	case 0:
		s.showingCredits = true
	case 1:
		s.m.Reset(false)
		s.m.ChangeScene(NewTitleScene(s.m))
	}
	return nil
}

// ShowingCredits reports whether the credits overlay is open.
func (s *EndingScene) ShowingCredits() bool { return s.showingCredits }

func (s *EndingScene) Update() {
	s.story.step()
}

func (s *EndingScene) View() string {
	if s.showingCredits {
		return s.creditsView()
	}

	help := "space or click to skip"
	menu := ""
	if s.story.tw.Done() {
		help = "enter for the credits"
		menu = s.menu.View()
	}
	header := block(storyHeader,
		endingStyle.Render("Epilogue: Infinite Scalability"),
		"",
		s.story.view(),
	)
	return header + "\n" + menu + "\n\n" + helpStyle.Render(help)
}

func (s *EndingScene) creditsView() string {
	st := s.m.Progress().Stats()
	lines := []string{
		endingStyle.Render("Credits"),
		"",
		fmt.Sprintf("Adventurer: %s", st.Name),
		fmt.Sprintf("Final level: %d", st.Level),
		fmt.Sprintf("AWS knowledge: %d", st.Knowledge),
		fmt.Sprintf("Play time: %s", s.m.Elapsed().Truncate(time.Second)),
		"",
	}
	lines = append(lines, creditLines...)
	lines = append(lines, "", helpStyle.Render("Press any key or click to return"))
	return overlay(lines...)
}
