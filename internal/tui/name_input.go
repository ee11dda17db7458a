package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const (
	// MaxNameLength bounds the adventurer's name, in runes.
	MaxNameLength = 15

	nameInputRow    = 2
	nameInputHeader = 6
)

// NameInputScene asks for the adventurer's name.
type NameInputScene struct {
	m     *Manager
	input widget.TextInput
	menu  widget.Menu
	err   string
}

func NewNameInputScene(m *Manager) *NameInputScene {
	s := &NameInputScene{
		m:     m,
		input: widget.NewTextInput("Enter your name", MaxNameLength, MaxNameLength+1),
		menu:  widget.NewMenu("Confirm", "Back"),
	}
	s.menu.Shortcuts = false
	s.menu.Place(2, nameInputHeader)
	s.input.Place(2, nameInputRow)
	s.input.SetValue(m.LastName())
	return s
}

func (s *NameInputScene) HandleInput(in widget.Input) tea.Cmd {
	if in.Kind == widget.InputBack {
		s.m.ChangeScene(NewTitleScene(s.m))
		return nil
	}
	if in.Kind != widget.InputClick && s.input.Handle(in) {
		s.err = ""
		return nil
	}
	if in.Kind == widget.InputClick {
		s.input.Handle(in)
	}

	switch s.menu.Handle(in) {
	case 0:
		s.confirm()
	case 1:
		s.m.ChangeScene(NewTitleScene(s.m))
	}
	return nil
}

func (s *NameInputScene) confirm() {
	name := strings.TrimSpace(s.input.Value())
	if name == "" {
		s.err = "Please enter your name"
		return
	}
	s.m.NewGame(name)
	s.m.ChangeScene(NewPrologueScene(s.m))
}

// Err is the validation message currently shown, if any.
func (s *NameInputScene) Err() string { return s.err }

func (s *NameInputScene) Update() {}

func (s *NameInputScene) View() string {
	var errLine string
	if s.err != "" {
		errLine = errorStyle.Render(s.err)
	}
	header := block(nameInputHeader,
		titleStyle.Render("What is your name, adventurer?"),
		"",
		"  "+s.input.View(),
		"",
		"  "+errLine,
	)
	return header + "\n" + s.menu.View() + "\n\n" + helpStyle.Render("enter to confirm, esc to go back")
}
