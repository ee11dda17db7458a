package engine

import (
	"errors"
	"slices"
)

// ErrItemNotFound is returned when removing an item the player does not hold.
var ErrItemNotFound = errors.New("item not in inventory")

// Stat names a numeric player stat.
type Stat string

const (
	StatMotivation    Stat = "motivation"
	StatConcentration Stat = "concentration"
	StatKnowledge     Stat = "aws_knowledge"

	// StatDamageReduction appears in item effects but is not a player stat.
	StatDamageReduction Stat = "damage_reduction"
)

const (
	InitialMotivation    = 100
	InitialConcentration = 100
	InitialKnowledge     = 0

	// KnowledgePerLevel is the aws_knowledge needed for each level.
	KnowledgePerLevel = 100
)

// Stats is a point-in-time view of the numeric part of Progress.
type Stats struct {
	Name          string
	Motivation    int
	Concentration int
	Knowledge     int
	Level         int
}

// Progress is the single mutable record of one play session.
type Progress struct {
	name          string
	motivation    int
	concentration int
	knowledge     int
	level         int
	items         []string
	skills        []string
	trials        []string
}

// NewProgress starts a session for name with one starting skill.
func NewProgress(name, startingSkill string) *Progress {
	p := &Progress{
		name:          name,
		motivation:    InitialMotivation,
		concentration: InitialConcentration,
		knowledge:     InitialKnowledge,
		level:         1,
	}
	if startingSkill != "" {
		p.skills = []string{startingSkill}
	}
	return p
}

func (p *Progress) Name() string { return p.name }

func (p *Progress) Level() int { return p.level }

// Stat returns the current value of s, or 0 for an unknown stat.
func (p *Progress) Stat(s Stat) int {
	if v := p.stat(s); v != nil {
		return *v
	}
	return 0
}

func (p *Progress) Stats() Stats {
	return Stats{
		Name:          p.name,
		Motivation:    p.motivation,
		Concentration: p.concentration,
		Knowledge:     p.knowledge,
		Level:         p.level,
	}
}

func (p *Progress) stat(s Stat) *int {
	switch s {
	case StatMotivation:
		return &p.motivation
	case StatConcentration:
		return &p.concentration
	case StatKnowledge:
		return &p.knowledge
	}
	return nil
}

// UpdateStat adds delta to s, clamping at zero. It reports whether the
// change raised the player's level. Unknown stats are ignored.
func (p *Progress) UpdateStat(s Stat, delta int) bool {
	v := p.stat(s)
	if v == nil {
		return false
	}
	*v = max(*v+delta, 0)

	if s != StatKnowledge {
		return false
	}
	if lvl := LevelFor(p.knowledge); lvl > p.level {
		p.level = lvl
		return true
	}
	return false
}

// Items returns the inventory in acquisition order.
func (p *Progress) Items() []string {
	return slices.Clone(p.items)
}

func (p *Progress) AddItem(name string) {
	p.items = append(p.items, name)
}

// RemoveItem drops the first instance of name.
func (p *Progress) RemoveItem(name string) error {
	i := slices.Index(p.items, name)
	if i < 0 {
		return ErrItemNotFound
	}
	p.items = slices.Delete(p.items, i, i+1)
	return nil
}

func (p *Progress) Skills() []string {
	return slices.Clone(p.skills)
}

// AddSkill learns a skill, reporting false if it was already known.
func (p *Progress) AddSkill(name string) bool {
	if slices.Contains(p.skills, name) {
		return false
	}
	p.skills = append(p.skills, name)
	return true
}

func (p *Progress) CompletedTrials() []string {
	return slices.Clone(p.trials)
}

func (p *Progress) HasCompleted(guardian string) bool {
	return slices.Contains(p.trials, guardian)
}

// CompleteTrial records a defeated guardian, reporting false if already recorded.
func (p *Progress) CompleteTrial(guardian string) bool {
	if p.HasCompleted(guardian) {
		return false
	}
	p.trials = append(p.trials, guardian)
	return true
}

func (p *Progress) IsGameOver() bool {
	return p.motivation <= 0
}

// IsGameComplete reports whether every named guardian has been defeated.
func (p *Progress) IsGameComplete(guardians []string) bool {
	for _, g := range guardians {
		if !p.HasCompleted(g) {
			return false
		}
	}
	return true
}
