package models

import (
	"errors"
	"fmt"
)

// Guardian is a boss bound to one map area.
type Guardian struct {
	Name           string   `yaml:"name"`
	Service        string   `yaml:"service"` // e.g., "Amazon S3"
	Description    string   `yaml:"description"`
	HP             int      `yaml:"hp"`
	AttackPatterns []string `yaml:"attack_patterns"`
	Weakness       string   `yaml:"weakness"` // keyword that doubles damage when typed
	Area           string   `yaml:"area"`
}

// Effect is a single stat delta applied when an item is used.
type Effect struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
}

// Item is something the player can find and use in battle.
type Item struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Effects     []Effect `yaml:"effects"`
}

// Skill is a battle technique. LevelRequired is informational only.
type Skill struct {
	Name          string `yaml:"name"`
	LevelRequired int    `yaml:"level_required"`
	Description   string `yaml:"description"`
	Power         int    `yaml:"power"`
}

// Catalog is the read-only game content.
type Catalog struct {
	Title         string     `yaml:"title"`
	StartingSkill string     `yaml:"starting_skill"`
	Areas         []string   `yaml:"areas"`
	Guardians     []Guardian `yaml:"guardians"`
	Items         []Item     `yaml:"items"`
	Skills        []Skill    `yaml:"skills"`
}

func (c *Catalog) GuardianByArea(area string) (Guardian, bool) {
	for _, g := range c.Guardians {
		if g.Area == area {
			return g, true
		}
	}
	return Guardian{}, false
}

func (c *Catalog) GuardianByName(name string) (Guardian, bool) {
	for _, g := range c.Guardians {
		if g.Name == name {
			return g, true
		}
	}
	return Guardian{}, false
}

func (c *Catalog) ItemByName(name string) (Item, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

func (c *Catalog) SkillByName(name string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// GuardianNames returns every guardian name in catalog order.
func (c *Catalog) GuardianNames() []string {
	names := make([]string, 0, len(c.Guardians))
	for _, g := range c.Guardians {
		names = append(names, g.Name)
	}
	return names
}

// AllAreas returns the map areas in display order.
func (c *Catalog) AllAreas() []string {
	return append([]string(nil), c.Areas...)
}

// Validate reports every inconsistency in the catalog at once.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Areas) == 0 {
		errs = append(errs, errors.New("catalog has no areas"))
	}
	areas := make(map[string]bool, len(c.Areas))
	for _, a := range c.Areas {
		if areas[a] {
			errs = append(errs, fmt.Errorf("duplicate area %q", a))
		}
		areas[a] = true
	}

	if len(c.Guardians) == 0 {
		errs = append(errs, errors.New("catalog has no guardians"))
	}
	guardians := make(map[string]bool, len(c.Guardians))
	guarded := make(map[string]string, len(c.Guardians)) // area -> guardian
	for _, g := range c.Guardians {
		switch {
		case g.Name == "":
			errs = append(errs, errors.New("guardian with empty name"))
		case guardians[g.Name]:
			errs = append(errs, fmt.Errorf("duplicate guardian %q", g.Name))
		}
		guardians[g.Name] = true
		if g.HP <= 0 {
			errs = append(errs, fmt.Errorf("guardian %q: hp must be positive", g.Name))
		}
		if g.Weakness == "" {
			errs = append(errs, fmt.Errorf("guardian %q: empty weakness", g.Name))
		}
		if len(g.AttackPatterns) == 0 {
			errs = append(errs, fmt.Errorf("guardian %q: no attack patterns", g.Name))
		}
		if !areas[g.Area] {
			errs = append(errs, fmt.Errorf("guardian %q: unknown area %q", g.Name, g.Area))
		}
		if other, ok := guarded[g.Area]; ok {
			errs = append(errs, fmt.Errorf("guardian %q: area %q already guarded by %q", g.Name, g.Area, other))
		} else {
			guarded[g.Area] = g.Name
		}
	}

	if len(c.Items) == 0 {
		errs = append(errs, errors.New("catalog has no items"))
	}
	items := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if items[it.Name] {
			errs = append(errs, fmt.Errorf("duplicate item %q", it.Name))
		}
		items[it.Name] = true
	}

	skills := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if skills[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate skill %q", s.Name))
		}
		skills[s.Name] = true
	}
	if !skills[c.StartingSkill] {
		errs = append(errs, fmt.Errorf("starting skill %q is not in the catalog", c.StartingSkill))
	}

	return errors.Join(errs...)
}
