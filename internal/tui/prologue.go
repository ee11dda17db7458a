package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const (
	storyWidth  = 96
	storyRows   = 13
	storyHeader = storyRows + 3
)

// storyPane is a typewriter shown through a fixed-size viewport.
type storyPane struct {
	tw *typewriter
	vp viewport.Model
}

func newStoryPane(lines ...string) storyPane {
	return storyPane{tw: newTypewriter(lines...), vp: viewport.New(storyWidth, storyRows)}
}

func (p *storyPane) step() {
	p.tw.Step()
	p.refresh()
}

func (p *storyPane) complete() {
	p.tw.Complete()
	p.refresh()
}

func (p *storyPane) refresh() {
	p.vp.SetContent(textStyle.Width(storyWidth).Render(p.tw.Text()))
	p.vp.GotoBottom()
}

func (p storyPane) view() string {
	return block(storyRows, p.vp.View())
}

// PrologueScene tells the legend of the treasure.
type PrologueScene struct {
	m     *Manager
	story storyPane
	menu  widget.Menu
}

func NewPrologueScene(m *Manager) *PrologueScene {
	name := m.Progress().Name()
	s := &PrologueScene{
		m: m,
		story: newStoryPane(
			"Long ago, a legendary treasure called \"Infinite Scalability\" was said to lie hidden deep in the Amazon Forest.",
			"It was said to grant its owner limitless possibility and power.",
			"",
			"But the treasure is closely watched by seven AWS Guardians,",
			"and only one who overcomes all of their trials may claim it.",
			"",
			fmt.Sprintf("You, %s, heard this legend", name),
			"and resolved to venture into the Amazon Forest.",
			"",
			"Armed with AWS knowledge, can you face the seven trials and win the treasure?",
			"",
			"Your adventure begins now...",
		),
		menu: widget.NewMenu("Begin the Adventure"),
	}
	s.menu.Shortcuts = false
	s.menu.Place(2, storyHeader)
	return s
}

func (s *PrologueScene) HandleInput(in widget.Input) tea.Cmd {
	if !s.story.tw.Done() {
		if in.Kind == widget.InputClick || in.IsContinue() {
			s.story.complete()
		}
		return nil
	}
	if in.IsContinue() || s.menu.Handle(in) == 0 {
		s.m.ChangeScene(NewMapScene(s.m))
	}
	return nil
}

func (s *PrologueScene) Update() {
	s.story.step()
}

func (s *PrologueScene) View() string {
	help := "space or click to skip"
	menu := ""
	if s.story.tw.Done() {
		help = "space or click to continue"
		menu = s.menu.View()
	}
	header := block(storyHeader,
		titleStyle.Render("Prologue: The Legend of the Amazon Forest"),
		"",
		s.story.view(),
	)
	return header + "\n" + menu + "\n\n" + helpStyle.Render(help)
}
