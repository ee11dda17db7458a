package models

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}

	if len(c.Guardians) != 7 {
		t.Errorf("Expected 7 guardians, got %d", len(c.Guardians))
	}
	if len(c.AllAreas()) != 7 {
		t.Errorf("Expected 7 areas, got %d", len(c.AllAreas()))
	}

	for _, area := range c.AllAreas() {
		if _, ok := c.GuardianByArea(area); !ok {
			t.Errorf("Expected a guardian for area %s", area)
		}
	}

	lambda, ok := c.GuardianByName("Lambda Guardian")
	if !ok {
		t.Fatalf("Expected Lambda Guardian in catalog")
	}
	if lambda.HP != 80 {
		t.Errorf("Expected Lambda Guardian hp 80, got %d", lambda.HP)
	}

	if _, ok := c.SkillByName(c.StartingSkill); !ok {
		t.Errorf("Expected starting skill %s to exist", c.StartingSkill)
	}

	essence, ok := c.ItemByName("Cloud Essence")
	if !ok {
		t.Fatalf("Expected Cloud Essence in catalog")
	}
	if len(essence.Effects) != 3 || essence.Effects[0].Stat != "motivation" {
		t.Errorf("Expected ordered effects starting with motivation, got %+v", essence.Effects)
	}
}

func TestLookupMisses(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}

	if _, ok := c.GuardianByArea("Nowhere"); ok {
		t.Errorf("Expected no guardian for unknown area")
	}
	if _, ok := c.GuardianByName("Nobody"); ok {
		t.Errorf("Expected no guardian for unknown name")
	}
	if _, ok := c.ItemByName("Nothing"); ok {
		t.Errorf("Expected no item for unknown name")
	}
}

func TestAllAreasReturnsCopy(t *testing.T) {
	c := &Catalog{Areas: []string{"a", "b"}}
	areas := c.AllAreas()
	areas[0] = "changed"
	if c.Areas[0] != "a" {
		t.Errorf("Expected catalog areas to be unchanged, got %v", c.Areas)
	}
}

func TestLoadCatalogInvalid(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte("starting_skill: Missing\nareas: [Plains]\n")},
		"guardians.yaml": {Data: []byte(`
guardians:
  - name: Ghost
    hp: 0
    area: Mountains
`)},
		"items.yaml":  {Data: []byte("items:\n  - name: Rock\n")},
		"skills.yaml": {Data: []byte("skills: []\n")},
	}

	_, err := LoadCatalog(fsys)
	if err == nil {
		t.Fatalf("Expected validation error")
	}

	for _, want := range []string{"hp must be positive", "empty weakness", "unknown area", "starting skill"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got %v", want, err)
		}
	}
}

func TestValidateGuardians(t *testing.T) {
	base := func() *Catalog {
		return &Catalog{
			StartingSkill: "Basic Command",
			Areas:         []string{"Plains", "Hills"},
			Guardians: []Guardian{
				{Name: "One", HP: 10, AttackPatterns: []string{"Poke"}, Weakness: "one", Area: "Plains"},
				{Name: "Two", HP: 10, AttackPatterns: []string{"Poke"}, Weakness: "two", Area: "Hills"},
			},
			Items:  []Item{{Name: "Rock"}},
			Skills: []Skill{{Name: "Basic Command", Power: 10}},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("Expected valid catalog, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   string
	}{
		{"no guardians", func(c *Catalog) { c.Guardians = nil }, "no guardians"},
		{"shared area", func(c *Catalog) { c.Guardians[1].Area = "Plains" }, `area "Plains" already guarded by "One"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadCatalogNoGuardians(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml":   {Data: []byte("starting_skill: Basic\nareas: [Plains]\n")},
		"guardians.yaml": {Data: []byte("guardians: []\n")},
		"items.yaml":     {Data: []byte("items:\n  - name: Rock\n")},
		"skills.yaml":    {Data: []byte("skills:\n  - name: Basic\n    power: 10\n")},
	}
	_, err := LoadCatalog(fsys)
	if err == nil || !strings.Contains(err.Error(), "no guardians") {
		t.Fatalf("Expected no guardians error, got %v", err)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte("areas: [Plains]\n")},
	}
	if _, err := LoadCatalog(fsys); err == nil {
		t.Fatalf("Expected error for missing guardians.yaml")
	}
}

func TestLoadCatalogDir(t *testing.T) {
	if _, err := LoadCatalogDir("content"); err != nil {
		t.Fatalf("Failed to load content dir: %v", err)
	}
	if _, err := LoadCatalogDir("does-not-exist"); err == nil {
		t.Errorf("Expected error for missing directory")
	}
}
