package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
	"github.com/tatianab/forest-quest/internal/models"
)

var (
	ErrUnknownSkill = errors.New("unknown skill")
	ErrUnknownItem  = errors.New("unknown item")
)

// BattleState is the discrete phase of a battle.
type BattleState string

const (
	StateIntro        BattleState = "intro"
	StatePlayerTurn   BattleState = "player_turn"
	StateSkillSelect  BattleState = "skill_select"
	StateItemSelect   BattleState = "item_select"
	StateCommandInput BattleState = "command_input"
	StateGuardianTurn BattleState = "guardian_turn"
	StateResult       BattleState = "result"
)

// Action is a top-level choice on the player's turn.
type Action string

const (
	ActionAttack Action = "attack"
	ActionItem   Action = "item"
	ActionRun    Action = "run"
)

// Outcome is how a battle ended.
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeEscape  Outcome = "escape"
)

const (
	// MaxCommandLength bounds the command buffer, in runes.
	MaxCommandLength = 50

	DefaultAnimationDelay = 2000 * time.Millisecond
)

const (
	evBegin      = "begin"
	evAttack     = "attack"
	evItem       = "item"
	evEscape     = "escape"
	evFleeFailed = "flee_failed"
	evPickSkill  = "pick_skill"
	evUseItem    = "use_item"
	evBack       = "back"
	evStrike     = "strike"
	evVanquish   = "vanquish"
	evRecover    = "recover"
	evCollapse   = "collapse"
)

var battleEvents = fsm.Events{
	{Name: evBegin, Src: []string{string(StateIntro)}, Dst: string(StatePlayerTurn)},
	{Name: evAttack, Src: []string{string(StatePlayerTurn)}, Dst: string(StateSkillSelect)},
	{Name: evItem, Src: []string{string(StatePlayerTurn)}, Dst: string(StateItemSelect)},
	{Name: evEscape, Src: []string{string(StatePlayerTurn)}, Dst: string(StateResult)},
	{Name: evFleeFailed, Src: []string{string(StatePlayerTurn)}, Dst: string(StateGuardianTurn)},
	{Name: evPickSkill, Src: []string{string(StateSkillSelect)}, Dst: string(StateCommandInput)},
	{Name: evUseItem, Src: []string{string(StateItemSelect)}, Dst: string(StateGuardianTurn)},
	{Name: evBack, Src: []string{string(StateSkillSelect), string(StateItemSelect), string(StateCommandInput)}, Dst: string(StatePlayerTurn)},
	{Name: evStrike, Src: []string{string(StateCommandInput)}, Dst: string(StateGuardianTurn)},
	{Name: evVanquish, Src: []string{string(StateCommandInput)}, Dst: string(StateResult)},
	{Name: evRecover, Src: []string{string(StateGuardianTurn)}, Dst: string(StatePlayerTurn)},
	{Name: evCollapse, Src: []string{string(StateGuardianTurn)}, Dst: string(StateResult)},
}

// BattleConfig holds the collaborators of a battle. Zero values fall back
// to the system clock, DefaultAnimationDelay and a disabled logger.
type BattleConfig struct {
	Catalog        *models.Catalog
	Progress       *Progress
	Random         Random
	Clock          Clock
	AnimationDelay time.Duration
	Log            zerolog.Logger
}

// Battle is one fight against a guardian. It owns the guardian's hp and
// mutates the player's Progress as the fight plays out.
type Battle struct {
	guardian models.Guardian
	hp       int
	machine  *fsm.FSM

	catalog  *models.Catalog
	progress *Progress
	rng      Random
	clock    Clock
	delay    Delay
	log      zerolog.Logger

	skill     string
	command   []rune
	message   string
	strike    *Strike
	concluded bool
}

func NewBattle(g models.Guardian, cfg BattleConfig) *Battle {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.AnimationDelay <= 0 {
		cfg.AnimationDelay = DefaultAnimationDelay
	}

	b := &Battle{
		guardian: g,
		hp:       g.HP,
		catalog:  cfg.Catalog,
		progress: cfg.Progress,
		rng:      cfg.Random,
		clock:    cfg.Clock,
		delay:    NewDelay(cfg.AnimationDelay),
		log:      cfg.Log.With().Str("guardian", g.Name).Logger(),
		message:  fmt.Sprintf("%s appeared!", g.Name),
	}
	b.machine = fsm.NewFSM(string(StateIntro), battleEvents, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			b.log.Debug().Str("from", e.Src).Str("to", e.Dst).Str("event", e.Event).Msg("battle transition")
		},
	})
	return b
}

func (b *Battle) Guardian() models.Guardian { return b.guardian }

func (b *Battle) GuardianHP() int { return b.hp }

func (b *Battle) State() BattleState { return BattleState(b.machine.Current()) }

func (b *Battle) Message() string { return b.message }

// Skill is the pending skill while entering a command.
func (b *Battle) Skill() string { return b.skill }

func (b *Battle) Command() string { return string(b.command) }

// LastStrike is the most recent player attack, if any.
func (b *Battle) LastStrike() (Strike, bool) {
	if b.strike == nil {
		return Strike{}, false
	}
	return *b.strike, true
}

// SkillOptions lists every learned skill. Skills are not gated by level.
func (b *Battle) SkillOptions() []string { return b.progress.Skills() }

func (b *Battle) ItemOptions() []string { return b.progress.Items() }

// Concluded reports whether the battle has left the result state.
func (b *Battle) Concluded() bool { return b.concluded }

// Outcome is derived from the current state of the fight.
func (b *Battle) Outcome() Outcome {
	switch {
	case b.hp <= 0:
		return OutcomeVictory
	case b.progress.IsGameOver():
		return OutcomeDefeat
	default:
		return OutcomeEscape
	}
}

func (b *Battle) fire(event string) {
	if err := b.machine.Event(context.Background(), event); err != nil {
		b.log.Error().Err(err).Str("event", event).Msg("rejected battle transition")
	}
}

func (b *Battle) toPlayerTurn(event, message string) {
	b.fire(event)
	b.delay.Stop()
	b.skill = ""
	b.command = nil
	b.message = message
}

func (b *Battle) wait(event, message string) {
	b.fire(event)
	b.delay.Start(b.clock.Now())
	b.message = message
}

// Advance is the interactive "any input" signal. It leaves the intro,
// resolves a pending guardian attack, or concludes a finished battle.
func (b *Battle) Advance() {
	switch b.State() {
	case StateIntro:
		b.fire(evBegin)
		b.message = "What will you do?"
	case StateGuardianTurn:
		b.counterAttack()
	case StateResult:
		b.conclude()
	}
}

// Update auto-advances the guardian turn and the result once the
// animation delay has elapsed.
func (b *Battle) Update() {
	if !b.delay.Expired(b.clock.Now()) {
		return
	}
	switch b.State() {
	case StateGuardianTurn:
		b.counterAttack()
	case StateResult:
		b.conclude()
	}
}

// Choose handles a player_turn action.
func (b *Battle) Choose(a Action) {
	if b.State() != StatePlayerTurn {
		return
	}

	switch a {
	case ActionAttack:
		b.fire(evAttack)
		b.message = "Which skill will you use?"

	case ActionItem:
		if len(b.progress.Items()) == 0 {
			b.message = "You have no items."
			return
		}
		b.fire(evItem)
		b.message = "Which item will you use?"

	case ActionRun:
		if chance(b.rng, FleeChance) {
			b.log.Info().Msg("player escaped")
			b.wait(evEscape, "You got away safely!")
			return
		}
		b.wait(evFleeFailed, "You couldn't escape!")
	}
}

// SelectSkill makes name the pending skill and opens the command prompt.
func (b *Battle) SelectSkill(name string) error {
	if b.State() != StateSkillSelect {
		return nil
	}
	if _, ok := b.catalog.SkillByName(name); !ok {
		b.toPlayerTurn(evBack, "You can't use that skill.")
		return fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	b.fire(evPickSkill)
	b.skill = name
	b.command = nil
	b.message = fmt.Sprintf("Using %s. Enter an AWS command.", name)
	return nil
}

// SelectItem applies an item's effects and ends the player's turn.
func (b *Battle) SelectItem(name string) error {
	if b.State() != StateItemSelect {
		return nil
	}
	item, ok := b.catalog.ItemByName(name)
	if !ok {
		b.toPlayerTurn(evBack, "You can't use that item.")
		return fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	if err := b.progress.RemoveItem(name); err != nil {
		b.toPlayerTurn(evBack, "You don't have that item.")
		return fmt.Errorf("use %s: %w", name, err)
	}

	message := fmt.Sprintf("You used %s!", name)
	for _, e := range item.Effects {
		stat := Stat(e.Stat)
		if stat == StatDamageReduction {
			message = fmt.Sprintf("You used %s! The next attack's damage will be halved!", name)
			continue
		}
		delta := int(e.Value)
		if b.progress.UpdateStat(stat, delta) {
			b.log.Info().Int("level", b.progress.Level()).Msg("level up")
		}
		message = fmt.Sprintf("You used %s! %s recovered by %d!", name, stat, delta)
	}

	b.log.Debug().Str("item", name).Msg("item used")
	b.wait(evUseItem, message)
	return nil
}

// Back returns to the action menu, discarding any pending skill and command.
func (b *Battle) Back() {
	switch b.State() {
	case StateSkillSelect, StateItemSelect, StateCommandInput:
		b.toPlayerTurn(evBack, "What will you do?")
	}
}

// TypeRune appends to the command buffer.
func (b *Battle) TypeRune(r rune) {
	if b.State() != StateCommandInput || len(b.command) >= MaxCommandLength {
		return
	}
	if !utf8.ValidRune(r) {
		return
	}
	b.command = append(b.command, r)
}

// SetCommand replaces the command buffer, truncating to MaxCommandLength.
func (b *Battle) SetCommand(s string) {
	if b.State() != StateCommandInput {
		return
	}
	runes := []rune(s)
	if len(runes) > MaxCommandLength {
		runes = runes[:MaxCommandLength]
	}
	b.command = runes
}

func (b *Battle) Backspace() {
	if b.State() != StateCommandInput || len(b.command) == 0 {
		return
	}
	b.command = b.command[:len(b.command)-1]
}

// Submit resolves the typed command against the guardian. Blank commands
// are ignored.
func (b *Battle) Submit() error {
	if b.State() != StateCommandInput {
		return nil
	}
	command := strings.TrimSpace(string(b.command))
	if command == "" {
		return nil
	}

	skill, ok := b.catalog.SkillByName(b.skill)
	if !ok {
		name := b.skill
		b.toPlayerTurn(evBack, "You can't use that skill.")
		return fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}

	strike := ResolveStrike(b.rng, skill.Power, b.progress.Level(), command, b.guardian.Weakness)
	b.strike = &strike
	b.hp = max(b.hp-strike.Damage, 0)
	b.command = nil

	b.log.Debug().
		Str("skill", skill.Name).
		Int("damage", strike.Damage).
		Int("kind", int(strike.Kind)).
		Int("hp", b.hp).
		Msg("strike resolved")

	if b.hp <= 0 {
		b.progress.CompleteTrial(b.guardian.Name)
		if b.progress.UpdateStat(StatKnowledge, VictoryKnowledge) {
			b.log.Info().Int("level", b.progress.Level()).Msg("level up")
		}
		b.log.Info().Msg("guardian defeated")
		b.wait(evVanquish, fmt.Sprintf("You defeated %s!", b.guardian.Name))
		return nil
	}

	message := fmt.Sprintf("%s took %d damage!", b.guardian.Name, strike.Damage)
	if strike.Kind.Critical() {
		message = "Critical hit! " + message
	}
	b.wait(evStrike, message)
	return nil
}

func (b *Battle) counterAttack() {
	c := ResolveCounter(b.rng, b.guardian.AttackPatterns)
	b.progress.UpdateStat(StatMotivation, -c.Motivation)
	b.progress.UpdateStat(StatConcentration, -c.Concentration)

	b.log.Debug().Str("attack", c.Pattern).Int("damage", c.Motivation).Msg("guardian attacked")

	if b.progress.IsGameOver() {
		b.log.Info().Msg("player defeated")
		b.wait(evCollapse, "You ran out of motivation...")
		return
	}
	b.toPlayerTurn(evRecover, fmt.Sprintf("%s used %s! Motivation fell by %d!", b.guardian.Name, c.Pattern, c.Motivation))
}

func (b *Battle) conclude() {
	if b.concluded {
		return
	}
	b.delay.Stop()
	b.concluded = true
	b.log.Info().Str("outcome", string(b.Outcome())).Msg("battle concluded")
}
