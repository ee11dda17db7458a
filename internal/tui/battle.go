package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/models"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

const (
	battleHeader     = 8
	battleCommandRow = battleHeader + 1
	battleSubmitRow  = battleHeader + 3
)

var battleActions = []engine.Action{engine.ActionAttack, engine.ActionItem, engine.ActionRun}

// BattleScene drives an engine.Battle from menus and a command prompt.
type BattleScene struct {
	m       *Manager
	battle  *engine.Battle
	actions widget.Menu
	choices widget.Menu
	input   widget.TextInput
	submit  widget.Menu
	state   engine.BattleState
}

func NewBattleScene(m *Manager, g models.Guardian) *BattleScene {
	s := &BattleScene{
		m:       m,
		battle:  m.newBattle(g),
		actions: widget.NewMenu("Attack", "Item", "Run"),
		choices: widget.NewMenu(),
		input:   widget.NewTextInput("Type an AWS command", engine.MaxCommandLength, engine.MaxCommandLength+1),
		submit:  widget.NewMenu("Submit", "Back"),
	}
	s.actions.Place(2, battleHeader)
	s.choices.Place(2, battleHeader)
	s.input.Place(2, battleCommandRow)
	s.submit.Shortcuts = false
	s.submit.Place(2, battleSubmitRow)
	s.sync()
	return s
}

func (s *BattleScene) Battle() *engine.Battle { return s.battle }

// sync rebuilds the widgets that mirror the battle after a state change.
func (s *BattleScene) sync() {
	state := s.battle.State()
	if state != s.state {
		s.state = state
		switch state {
		case engine.StateSkillSelect:
			s.choices.Cursor = 0
			s.choices.SetLabels(append(s.battle.SkillOptions(), "Back")...)
		case engine.StateItemSelect:
			s.choices.Cursor = 0
			s.choices.SetLabels(append(s.battle.ItemOptions(), "Back")...)
		case engine.StateCommandInput:
			s.input.Focus()
		}
	}
	if s.input.Value() != s.battle.Command() {
		s.input.SetValue(s.battle.Command())
	}
}

func (s *BattleScene) HandleInput(in widget.Input) tea.Cmd {
	defer s.sync()

	switch s.battle.State() {
	case engine.StateIntro, engine.StateGuardianTurn, engine.StateResult:
		s.battle.Advance()
		s.finish()

	case engine.StatePlayerTurn:
		if i := s.actions.Handle(in); i >= 0 {
			s.battle.Choose(battleActions[i])
		}

	case engine.StateSkillSelect, engine.StateItemSelect:
		s.handleChoice(in)

	case engine.StateCommandInput:
		s.handleCommand(in)
	}
	return nil
}

func (s *BattleScene) handleChoice(in widget.Input) {
	if in.Kind == widget.InputBack {
		s.battle.Back()
		return
	}
	i := s.choices.Handle(in)
	if i < 0 {
		return
	}
	if i == len(s.choices.Buttons)-1 {
		s.battle.Back()
		return
	}

	name := s.choices.Buttons[i].Label
	var err error
	if s.battle.State() == engine.StateSkillSelect {
		err = s.battle.SelectSkill(name)
	} else {
		err = s.battle.SelectItem(name)
	}
	if err != nil {
		s.m.log.Warn().Err(err).Msg("battle selection rejected")
	}
}

func (s *BattleScene) handleCommand(in widget.Input) {
	switch in.Kind {
	case widget.InputConfirm:
		s.submitCommand()
		return
	case widget.InputBack:
		s.battle.Back()
		return
	case widget.InputClick:
		s.input.Handle(in)
		switch s.submit.Handle(in) {
		case 0:
			s.submitCommand()
		case 1:
			s.battle.Back()
		}
		return
	}
	// a stray click blurs the field; typing always goes to the command
	s.input.Focus()
	if s.input.Handle(in) {
		s.battle.SetCommand(s.input.Value())
	}
}

func (s *BattleScene) submitCommand() {
	if err := s.battle.Submit(); err != nil {
		s.m.log.Warn().Err(err).Msg("command rejected")
	}
}

// finish leaves for the result screen once the battle has concluded.
func (s *BattleScene) finish() {
	if s.battle.Concluded() {
		s.m.ChangeScene(NewBattleResultScene(s.m, s.battle.Guardian(), s.battle.Outcome()))
	}
}

func (s *BattleScene) Update() {
	s.battle.Update()
	s.sync()
	s.finish()
}

func (s *BattleScene) View() string {
	g := s.battle.Guardian()
	st := s.m.Progress().Stats()

	header := block(battleHeader,
		titleStyle.Render(fmt.Sprintf("%s (%s)", g.Name, g.Service)),
		widget.NewStatusBar("HP", s.battle.GuardianHP(), g.HP, guardianColor).View(),
		"",
		widget.NewStatusBar("Motivation", st.Motivation, engine.InitialMotivation, motivationColor).View(),
		widget.NewStatusBar("Concentration", st.Concentration, engine.InitialConcentration, concentrationColor).View(),
		"",
		messageStyle.Render(s.battle.Message()),
	)

	var body, help string
	switch s.battle.State() {
	case engine.StatePlayerTurn:
		body = s.actions.View()
		help = "choose an action"
	case engine.StateSkillSelect, engine.StateItemSelect:
		body = s.choices.View()
		help = "esc to go back"
	case engine.StateCommandInput:
		body = textStyle.Render("  Skill: "+s.battle.Skill()) + "\n" +
			"  " + s.input.View() + "\n\n" +
			s.submit.View()
		help = "enter to submit, esc to go back"
	default:
		help = "press any key or click to continue"
	}
	return header + "\n" + body + "\n\n" + helpStyle.Render(help)
}
