package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/engine/enginetest"
	"github.com/tatianab/forest-quest/internal/models"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

func smallCatalog() *models.Catalog {
	return &models.Catalog{
		Title:         "Test Quest",
		StartingSkill: "Basic Command",
		Areas:         []string{"S3 Wetlands", "Quiet Glade"},
		Guardians: []models.Guardian{{
			Name:           "S3 Guardian",
			Service:        "Amazon S3",
			HP:             20,
			AttackPatterns: []string{"Data Flood"},
			Weakness:       "data organization",
			Area:           "S3 Wetlands",
		}},
		Items: []models.Item{{
			Name:        "Cloud Coffee",
			Description: "Restores concentration.",
			Effects:     []models.Effect{{Stat: "concentration", Value: 20}},
		}},
		Skills: []models.Skill{{Name: "Basic Command", LevelRequired: 1, Power: 10}},
	}
}

type harness struct {
	m        *Manager
	rng      *enginetest.Random
	clock    *enginetest.Clock
	narrator *enginetest.Narrator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		rng:      &enginetest.Random{},
		clock:    enginetest.NewClock(),
		narrator: &enginetest.Narrator{},
	}
	h.m = NewManager(Options{
		Catalog:        smallCatalog(),
		Random:         h.rng,
		Clock:          h.clock,
		Narrator:       h.narrator,
		FPS:            60,
		AnimationDelay: 2 * time.Second,
		Log:            zerolog.Nop(),
	})
	return h
}

func (h *harness) send(ins ...widget.Input) {
	for _, in := range ins {
		h.m.Dispatch(in)
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.m.Dispatch(widget.Rune(r))
	}
}

// startGame plays from the title to the map as name.
func (h *harness) startGame(t *testing.T, name string) {
	t.Helper()
	h.send(widget.Confirm())
	require.IsType(t, &NameInputScene{}, h.m.Current())
	h.typeText(name)
	h.send(widget.Confirm())
	require.IsType(t, &PrologueScene{}, h.m.Current())
	h.send(widget.Confirm(), widget.Confirm())
	require.IsType(t, &MapScene{}, h.m.Current())
}

// collect runs cmd and every command it batches, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestNameInput(t *testing.T) {
	h := newHarness(t)
	h.send(widget.Confirm())

	s, ok := h.m.Current().(*NameInputScene)
	require.True(t, ok)

	h.send(widget.Confirm())
	assert.Equal(t, "Please enter your name", s.Err())
	assert.Same(t, s, h.m.Current())

	h.typeText("   ")
	h.send(widget.Confirm())
	assert.NotEmpty(t, s.Err())

	h.send(widget.Delete(), widget.Delete(), widget.Delete())
	h.typeText("Ana Maria The Brave")
	assert.Empty(t, s.Err())
	h.send(widget.Confirm())
	require.IsType(t, &PrologueScene{}, h.m.Current())
	assert.Equal(t, "Ana Maria The B", h.m.Progress().Name())
}

func TestNameInputBack(t *testing.T) {
	h := newHarness(t)
	h.send(widget.Confirm(), widget.Back())
	assert.IsType(t, &TitleScene{}, h.m.Current())
}

func TestTitleCredits(t *testing.T) {
	h := newHarness(t)
	h.send(widget.Rune('2'))

	s := h.m.Current().(*TitleScene)
	require.True(t, s.ShowingCredits())
	assert.Contains(t, h.m.Render(), "Credits")

	h.send(widget.Click(0, 0))
	assert.False(t, s.ShowingCredits())
}

func TestTitleExit(t *testing.T) {
	h := newHarness(t)
	cmd := h.m.Dispatch(widget.Rune('3'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPrologueTypewriter(t *testing.T) {
	h := newHarness(t)
	h.send(widget.Confirm())
	h.typeText("Ana")
	h.send(widget.Confirm())

	s := h.m.Current().(*PrologueScene)
	h.m.Tick()
	assert.False(t, s.story.tw.Done())

	h.send(widget.Click(0, 0))
	assert.True(t, s.story.tw.Done())
	assert.Contains(t, h.m.Render(), "You, Ana, heard this legend")

	h.send(widget.Rune(' '))
	assert.IsType(t, &MapScene{}, h.m.Current())
}

func TestBattleVictoryCompletesGame(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1}
	h.send(widget.Rune('1'))
	bs, ok := h.m.Current().(*BattleScene)
	require.True(t, ok)
	assert.Equal(t, engine.StateIntro, bs.Battle().State())

	h.send(widget.Confirm())
	assert.Equal(t, engine.StatePlayerTurn, bs.Battle().State())

	h.send(widget.Rune('1'))
	require.Equal(t, engine.StateSkillSelect, bs.Battle().State())
	h.send(widget.Rune('1'))
	require.Equal(t, engine.StateCommandInput, bs.Battle().State())

	h.typeText("aws s3 data organization")
	assert.Equal(t, "aws s3 data organization", bs.Battle().Command())
	h.send(widget.Confirm())
	require.Equal(t, engine.StateResult, bs.Battle().State())
	assert.Equal(t, 0, bs.Battle().GuardianHP())

	h.send(widget.Confirm())
	rs, ok := h.m.Current().(*BattleResultScene)
	require.True(t, ok)
	assert.Equal(t, engine.OutcomeVictory, rs.Outcome())
	assert.Contains(t, rs.Lines(), "Trials remaining: 0/1")
	assert.Equal(t, engine.VictoryKnowledge, h.m.Progress().Stat(engine.StatKnowledge))

	h.send(widget.Confirm())
	require.IsType(t, &MapScene{}, h.m.Current())
	h.m.Tick()
	require.IsType(t, &EndingScene{}, h.m.Current())
}

func TestBattleEscape(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1, 0.1}
	h.send(widget.Rune('1'), widget.Confirm(), widget.Rune('3'))
	bs := h.m.Current().(*BattleScene)
	require.Equal(t, engine.StateResult, bs.Battle().State())

	h.clock.Advance(3 * time.Second)
	h.m.Tick()
	rs, ok := h.m.Current().(*BattleResultScene)
	require.True(t, ok)
	assert.Equal(t, engine.OutcomeEscape, rs.Outcome())
	assert.Contains(t, strings.Join(rs.Lines(), "\n"), "weakness is data organization")
	assert.False(t, h.m.Progress().HasCompleted("S3 Guardian"))
}

func TestBattleCounterAttackOnDelay(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1, 0.9}
	h.send(widget.Rune('1'), widget.Confirm(), widget.Rune('3'))
	bs := h.m.Current().(*BattleScene)
	require.Equal(t, engine.StateGuardianTurn, bs.Battle().State())

	h.clock.Advance(time.Second)
	h.m.Tick()
	assert.Equal(t, engine.StateGuardianTurn, bs.Battle().State())

	h.clock.Advance(2 * time.Second)
	h.m.Tick()
	assert.Equal(t, engine.StatePlayerTurn, bs.Battle().State())
	assert.Equal(t, 90, h.m.Progress().Stat(engine.StatMotivation))
	assert.Equal(t, 95, h.m.Progress().Stat(engine.StatConcentration))
}

func TestBattleCommandBack(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1}
	h.send(widget.Rune('1'), widget.Confirm(), widget.Rune('1'), widget.Rune('1'))
	bs := h.m.Current().(*BattleScene)
	h.typeText("aws s3 ls")
	h.send(widget.Delete())
	assert.Equal(t, "aws s3 l", bs.Battle().Command())

	h.send(widget.Back())
	assert.Equal(t, engine.StatePlayerTurn, bs.Battle().State())
	assert.Empty(t, bs.Battle().Command())
	assert.Empty(t, bs.input.Value())
}

func TestBattleAdvancesOnUnmappedKey(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1}
	h.send(widget.Rune('1'))
	bs := h.m.Current().(*BattleScene)
	require.Equal(t, engine.StateIntro, bs.Battle().State())

	h.send(widget.Other())
	assert.Equal(t, engine.StatePlayerTurn, bs.Battle().State())
}

func TestBattleTypingAfterStrayClick(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.1}
	h.send(widget.Rune('1'), widget.Confirm(), widget.Rune('1'), widget.Rune('1'))
	bs := h.m.Current().(*BattleScene)
	require.Equal(t, engine.StateCommandInput, bs.Battle().State())

	h.typeText("aws ")
	h.send(widget.Click(0, 0))
	require.Equal(t, engine.StateCommandInput, bs.Battle().State())
	assert.False(t, bs.input.Focused())

	h.typeText("s3")
	assert.True(t, bs.input.Focused())
	assert.Equal(t, "aws s3", bs.Battle().Command())
}

func TestBattleItem(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().UpdateStat(engine.StatConcentration, -50)

	h.rng.Floats = []float64{0.1}
	h.send(widget.Rune('1'), widget.Confirm(), widget.Rune('2'))
	bs := h.m.Current().(*BattleScene)
	assert.Equal(t, engine.StatePlayerTurn, bs.Battle().State())
	assert.Equal(t, "You have no items.", bs.Battle().Message())

	h.m.Progress().AddItem("Cloud Coffee")
	h.send(widget.Rune('2'))
	require.Equal(t, engine.StateItemSelect, bs.Battle().State())
	assert.Len(t, bs.choices.Buttons, 2)

	h.send(widget.Rune('1'))
	assert.Equal(t, engine.StateGuardianTurn, bs.Battle().State())
	assert.Equal(t, 70, h.m.Progress().Stat(engine.StatConcentration))
	assert.Empty(t, h.m.Progress().Items())
}

func TestEventRest(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().UpdateStat(engine.StatMotivation, -50)

	h.rng.Floats = []float64{0.95}
	h.rng.Ints = []int{2}
	h.send(widget.Rune('1'))
	es, ok := h.m.Current().(*EventScene)
	require.True(t, ok)
	assert.Equal(t, 70, h.m.Progress().Stat(engine.StatMotivation))
	assert.Nil(t, es.Init())

	h.send(widget.Rune(' '))
	assert.IsType(t, &MapScene{}, h.m.Current())
}

func TestEventHintRumor(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.narrator.Line = "The guardian hoards unlabeled buckets."

	h.rng.Floats = []float64{0.95}
	h.rng.Ints = []int{1}
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	es, ok := h.m.Current().(*EventScene)
	require.True(t, ok)
	assert.Contains(t, h.m.Render(), "leans in closer")

	for _, msg := range collect(cmd) {
		h.m.Update(msg)
	}
	assert.Equal(t, 1, h.narrator.Calls)
	assert.Contains(t, es.Lines(), "\"The guardian hoards unlabeled buckets.\"")
	assert.NotContains(t, h.m.Render(), "leans in closer")
}

func TestEventHintRumorFailure(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.narrator.Err = errors.New("quota exceeded")

	h.rng.Floats = []float64{0.95}
	h.rng.Ints = []int{1}
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	es := h.m.Current().(*EventScene)
	for _, msg := range collect(cmd) {
		h.m.Update(msg)
	}
	assert.Len(t, es.Lines(), 3)
}

func TestStaleRumorIgnored(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.rng.Floats = []float64{0.95}
	h.rng.Ints = []int{1}
	h.send(widget.Rune('1'))
	es := h.m.Current().(*EventScene)

	es.HandleMsg(rumorMsg{scene: es.id + 1, line: "old news"})
	assert.Len(t, es.Lines(), 3)
}

func TestInventoryOverlay(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().AddItem("Cloud Coffee")

	h.send(widget.Rune('3'))
	ms := h.m.Current().(*MapScene)
	require.True(t, ms.showingInventory)
	assert.Contains(t, h.m.Render(), "Cloud Coffee: Restores concentration.")

	h.send(widget.Rune('x'))
	assert.False(t, ms.showingInventory)
}

func TestMapClick(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")

	h.rng.Floats = []float64{0.95}
	h.rng.Ints = []int{2}
	h.send(widget.Click(3, mapHeader+1))
	es, ok := h.m.Current().(*EventScene)
	require.True(t, ok)
	assert.Equal(t, "Quiet Glade", es.enc.Area)
}

func TestGameOverRetryKeepsName(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().AddItem("Cloud Coffee")
	h.m.Progress().UpdateStat(engine.StatMotivation, -100)

	h.m.Tick()
	require.IsType(t, &GameOverScene{}, h.m.Current())

	h.send(widget.Rune('1'))
	require.IsType(t, &TitleScene{}, h.m.Current())
	assert.Empty(t, h.m.Progress().Items())
	assert.Equal(t, engine.InitialMotivation, h.m.Progress().Stat(engine.StatMotivation))

	h.send(widget.Confirm())
	ns := h.m.Current().(*NameInputScene)
	assert.Equal(t, "Ana", ns.input.Value())
}

func TestGameOverQuit(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().UpdateStat(engine.StatMotivation, -100)
	h.m.Tick()

	cmd := h.m.Dispatch(widget.Rune('2'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEndingCreditsAndReset(t *testing.T) {
	h := newHarness(t)
	h.startGame(t, "Ana")
	h.m.Progress().CompleteTrial("S3 Guardian")
	h.clock.Advance(95 * time.Second)
	h.m.Tick()

	es, ok := h.m.Current().(*EndingScene)
	require.True(t, ok)
	h.send(widget.Confirm())
	require.True(t, es.story.tw.Done())

	h.send(widget.Confirm())
	require.True(t, es.ShowingCredits())
	view := h.m.Render()
	assert.Contains(t, view, "Adventurer: Ana")
	assert.Contains(t, view, "Play time: 1m35s")

	h.send(widget.Rune(' '))
	assert.False(t, es.ShowingCredits())

	h.send(widget.Rune('2'))
	require.IsType(t, &TitleScene{}, h.m.Current())
	assert.Empty(t, h.m.LastName())
	assert.Empty(t, h.m.Progress().CompletedTrials())
}

func TestManagerCtrlC(t *testing.T) {
	h := newHarness(t)
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestManagerFrameTicksScene(t *testing.T) {
	h := newHarness(t)
	h.send(widget.Confirm())
	h.typeText("Ana")
	h.send(widget.Confirm())
	s := h.m.Current().(*PrologueScene)

	_, cmd := h.m.Update(frameMsg(h.clock.Now()))
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, s.story.tw.Text())
}
