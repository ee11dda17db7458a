package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/models"
	"github.com/tatianab/forest-quest/internal/tui/widget"
)

// Scene is one full-screen mode of the game.
type Scene interface {
	HandleInput(in widget.Input) tea.Cmd
	Update()
	View() string
}

// initializer is implemented by scenes that start work when they become
// current.
type initializer interface {
	Init() tea.Cmd
}

// messageHandler is implemented by scenes that consume their own async
// results.
type messageHandler interface {
	HandleMsg(msg tea.Msg) tea.Cmd
}

// Options configures a Manager. Random and Catalog are required.
type Options struct {
	Catalog        *models.Catalog
	Random         engine.Random
	Clock          engine.Clock
	Narrator       engine.Narrator
	FPS            int
	AnimationDelay time.Duration
	Log            zerolog.Logger
}

type frameMsg time.Time

// Manager holds the current scene and the session's Progress. It is the
// bubbletea model of the game: input, frame ticks and rendering are all
// forwarded to the current scene.
type Manager struct {
	current Scene
	pending []tea.Cmd

	catalog  *models.Catalog
	progress *engine.Progress
	rng      engine.Random
	clock    engine.Clock
	narrator engine.Narrator
	log      zerolog.Logger

	fps            int
	animationDelay time.Duration

	lastName string
	started  time.Time
	nextID   int
}

// NewManager returns a manager showing the title scene.
func NewManager(opts Options) *Manager {
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.AnimationDelay <= 0 {
		opts.AnimationDelay = engine.DefaultAnimationDelay
	}

	m := &Manager{
		catalog:        opts.Catalog,
		rng:            opts.Random,
		clock:          opts.Clock,
		narrator:       opts.Narrator,
		log:            opts.Log,
		fps:            opts.FPS,
		animationDelay: opts.AnimationDelay,
	}
	m.Reset(false)
	m.ChangeScene(NewTitleScene(m))
	return m
}

// ChangeScene replaces the current scene. The old scene and its timers are
// dropped.
func (m *Manager) ChangeScene(s Scene) {
	m.log.Debug().Str("scene", fmt.Sprintf("%T", s)).Msg("scene change")
	m.current = s
	if in, ok := s.(initializer); ok {
		if cmd := in.Init(); cmd != nil {
			m.pending = append(m.pending, cmd)
		}
	}
}

func (m *Manager) Current() Scene { return m.current }

// Dispatch forwards an input to the current scene.
func (m *Manager) Dispatch(in widget.Input) tea.Cmd {
	if m.current == nil {
		return nil
	}
	return m.current.HandleInput(in)
}

// Tick runs one frame of the current scene.
func (m *Manager) Tick() {
	if m.current != nil {
		m.current.Update()
	}
}

// Render draws the current scene.
func (m *Manager) Render() string {
	if m.current == nil {
		return ""
	}
	return m.current.View()
}

func (m *Manager) Catalog() *models.Catalog { return m.catalog }

func (m *Manager) Progress() *engine.Progress { return m.progress }

// LastName is the name of the previous adventurer, offered again after a retry.
func (m *Manager) LastName() string { return m.lastName }

// NewGame starts a fresh session for name.
func (m *Manager) NewGame(name string) {
	m.progress = engine.NewProgress(name, m.catalog.StartingSkill)
	m.lastName = name
	m.started = m.clock.Now()
	m.log.Info().Str("player", name).Msg("new game")
}

// Reset discards the session. keepName remembers the adventurer's name
// for the next name prompt.
func (m *Manager) Reset(keepName bool) {
	if !keepName {
		m.lastName = ""
	}
	m.progress = engine.NewProgress("", m.catalog.StartingSkill)
	m.started = m.clock.Now()
}

// Elapsed is the play time of the current session.
func (m *Manager) Elapsed() time.Duration {
	return m.clock.Now().Sub(m.started)
}

func (m *Manager) IsGameOver() bool {
	return m.progress.IsGameOver()
}

func (m *Manager) IsGameComplete() bool {
	return m.progress.IsGameComplete(m.catalog.GuardianNames())
}

func (m *Manager) resolver() *engine.Resolver {
	return engine.NewResolver(m.catalog, m.progress, m.rng, m.log)
}

func (m *Manager) newBattle(g models.Guardian) *engine.Battle {
	return engine.NewBattle(g, engine.BattleConfig{
		Catalog:        m.catalog,
		Progress:       m.progress,
		Random:         m.rng,
		Clock:          m.clock,
		AnimationDelay: m.animationDelay,
		Log:            m.log,
	})
}

func (m *Manager) id() int {
	m.nextID++
	return m.nextID
}

func (m *Manager) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Manager) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Manager) Init() tea.Cmd {
	return m.flush(m.frame())
}

func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.Tick()
		return m, m.flush(m.frame())

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	ins := widget.FromMsg(msg)
	if ins == nil {
		if h, ok := m.current.(messageHandler); ok {
			return m, m.flush(h.HandleMsg(msg))
		}
		return m, m.flush()
	}

	var cmds []tea.Cmd
	for _, in := range ins {
		cmds = append(cmds, m.Dispatch(in))
	}
	return m, m.flush(cmds...)
}

func (m *Manager) View() string {
	return m.Render()
}

// Run starts the frame loop until the player quits.
func Run(m *Manager, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
