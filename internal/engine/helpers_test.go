package engine_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/engine/enginetest"
	"github.com/tatianab/forest-quest/internal/models"
)

func loadCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	c, err := models.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func guardian(t *testing.T, c *models.Catalog, name string) models.Guardian {
	t.Helper()
	g, ok := c.GuardianByName(name)
	require.True(t, ok, "guardian %s", name)
	return g
}

type battleFixture struct {
	catalog  *models.Catalog
	progress *engine.Progress
	rng      *enginetest.Random
	clock    *enginetest.Clock
	battle   *engine.Battle
}

func newBattle(t *testing.T, name string) *battleFixture {
	t.Helper()
	c := loadCatalog(t)
	f := &battleFixture{
		catalog:  c,
		progress: engine.NewProgress("Ada", c.StartingSkill),
		rng:      &enginetest.Random{},
		clock:    enginetest.NewClock(),
	}
	f.battle = engine.NewBattle(guardian(t, c, name), engine.BattleConfig{
		Catalog:        c,
		Progress:       f.progress,
		Random:         f.rng,
		Clock:          f.clock,
		AnimationDelay: 2 * time.Second,
		Log:            zerolog.Nop(),
	})
	return f
}

func (f *battleFixture) typeCommand(s string) {
	for _, r := range s {
		f.battle.TypeRune(r)
	}
}
