package engine

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	// LevelScaling is the bonus per level above 1 applied to skill power.
	LevelScaling = 0.2

	WeaknessMultiplier = 2.0
	CriticalMultiplier = 1.5
	CriticalChance     = 0.2

	FleeChance = 0.5

	CounterDamageMin = 10
	CounterDamageMax = 20

	VictoryKnowledge = 50
	RestRecovery     = 20
)

// LevelFor derives the level from accumulated knowledge.
func LevelFor(knowledge int) int {
	return 1 + knowledge/KnowledgePerLevel
}

// HitKind says which multiplier applied to a strike.
type HitKind int

const (
	HitNormal HitKind = iota
	HitCritical
	HitWeakness
)

func (k HitKind) Critical() bool {
	return k != HitNormal
}

// Strike is a resolved player attack.
type Strike struct {
	Damage int
	Kind   HitKind
}

var fold = cases.Fold()

// ContainsWeakness reports whether command mentions the weakness keyword,
// ignoring case.
func ContainsWeakness(command, weakness string) bool {
	if weakness == "" {
		return false
	}
	return strings.Contains(fold.String(command), fold.String(weakness))
}

// ResolveStrike computes damage for a skill of the given power. The weakness
// check comes first; only when it misses is the random critical rolled.
func ResolveStrike(rng Random, power, level int, command, weakness string) Strike {
	damage := float64(power) * (1 + float64(level-1)*LevelScaling)

	kind := HitNormal
	switch {
	case ContainsWeakness(command, weakness):
		damage *= WeaknessMultiplier
		kind = HitWeakness
	case chance(rng, CriticalChance):
		damage *= CriticalMultiplier
		kind = HitCritical
	}

	return Strike{Damage: int(damage), Kind: kind}
}

// Counter is a resolved guardian attack.
type Counter struct {
	Pattern       string
	Motivation    int
	Concentration int
}

// ResolveCounter picks an attack label and rolls its base damage. The
// concentration loss is half the motivation loss, rounded down.
func ResolveCounter(rng Random, patterns []string) Counter {
	var pattern string
	if len(patterns) > 0 {
		pattern = pick(rng, patterns)
	}
	base := between(rng, CounterDamageMin, CounterDamageMax)
	return Counter{Pattern: pattern, Motivation: base, Concentration: base / 2}
}
