package engine

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tatianab/forest-quest/internal/models"
)

// EncounterKind is the outcome category of exploring an area.
type EncounterKind string

const (
	EncounterBattle EncounterKind = "battle"
	EncounterItem   EncounterKind = "item"
	EncounterHint   EncounterKind = "hint"
	EncounterRest   EncounterKind = "rest"
)

type category string

const (
	categoryBattle  category = "battle"
	categoryItem    category = "item"
	categoryHint    category = "hint"
	categoryNothing category = "nothing"
)

var encounterWeights = []weighted[category]{
	{categoryBattle, 0.4},
	{categoryItem, 0.3},
	{categoryHint, 0.2},
	{categoryNothing, 0.1},
}

var eventKinds = []EncounterKind{EncounterItem, EncounterHint, EncounterRest}

// Encounter is what happened when the player explored an area. Battle
// encounters carry the guardian to fight; the others carry display text.
type Encounter struct {
	Kind     EncounterKind
	Area     string
	Guardian models.Guardian // battle opponent, or the subject of a hint
	Item     models.Item
	Title    string
	Lines    []string
}

// Resolver turns an area choice into an encounter.
type Resolver struct {
	catalog  *models.Catalog
	progress *Progress
	rng      Random
	log      zerolog.Logger
}

func NewResolver(catalog *models.Catalog, progress *Progress, rng Random, log zerolog.Logger) *Resolver {
	return &Resolver{catalog: catalog, progress: progress, rng: rng, log: log}
}

// Explore draws an encounter for area. Guardians already defeated, and areas
// without a guardian, fall back to a random event.
func (r *Resolver) Explore(area string) Encounter {
	drawn := pickWeighted(r.rng, encounterWeights)
	r.log.Debug().Str("area", area).Str("category", string(drawn)).Msg("encounter drawn")

	if drawn == categoryBattle {
		g, ok := r.catalog.GuardianByArea(area)
		if ok && !r.progress.HasCompleted(g.Name) {
			return Encounter{
				Kind:     EncounterBattle,
				Area:     area,
				Guardian: g,
				Title:    fmt.Sprintf("%s appeared!", g.Name),
			}
		}
	}
	return r.event(area)
}

func (r *Resolver) event(area string) Encounter {
	kind := pick(r.rng, eventKinds)
	r.log.Debug().Str("area", area).Str("event", string(kind)).Msg("event resolved")

	switch kind {
	case EncounterItem:
		item := pick(r.rng, r.catalog.Items)
		r.progress.AddItem(item.Name)
		return Encounter{
			Kind:  EncounterItem,
			Area:  area,
			Item:  item,
			Title: "Item found!",
			Lines: []string{
				fmt.Sprintf("While exploring %s, something glittering caught your eye.", area),
				fmt.Sprintf("You found %s!", item.Name),
				fmt.Sprintf("\"%s\"", item.Description),
			},
		}

	case EncounterHint:
		g := pick(r.rng, r.catalog.Guardians)
		return Encounter{
			Kind:     EncounterHint,
			Area:     area,
			Guardian: g,
			Title:    "Information acquired!",
			Lines: []string{
				fmt.Sprintf("While resting in %s, a passing traveler shared some news.", area),
				fmt.Sprintf("\"They say %s wields the power of %s.\"", g.Name, g.Service),
				fmt.Sprintf("\"Rumor has it that %s is its weakness.\"", g.Weakness),
			},
		}
	}

	r.progress.UpdateStat(StatMotivation, RestRecovery)
	r.progress.UpdateStat(StatConcentration, RestRecovery)
	return Encounter{
		Kind:  EncounterRest,
		Area:  area,
		Title: "Rest",
		Lines: []string{
			fmt.Sprintf("The beautiful scenery of %s soothed you.", area),
			"A short break restored your motivation and concentration!",
			"You are ready to continue the adventure.",
		},
	}
}
