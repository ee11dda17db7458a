// Command simulate_game plays seeded sessions of the game without a
// terminal and prints how they ended.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tatianab/forest-quest/internal/config"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/models"
	"golang.org/x/sync/errgroup"
)

const fallbackCommand = "aws help"

var (
	sessions int
	seed     uint64
	maxTurns int
	narrate  bool
	verbose  bool
)

var simCmd = &cobra.Command{
	Use:          "simulate_game",
	Short:        "Play seeded headless sessions and report outcomes",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(cmd.Context())
	},
}

func init() {
	simCmd.Flags().IntVarP(&sessions, "sessions", "n", 20, "number of sessions to play")
	simCmd.Flags().Uint64Var(&seed, "seed", 1, "seed of the first session; session i uses seed+i")
	simCmd.Flags().IntVar(&maxTurns, "turns", 200, "explorations per session before giving up")
	simCmd.Flags().BoolVar(&narrate, "narrate", false, "ask Gemini for a rumor on every hint")
	simCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every battle")
}

func main() {
	if err := simCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

type result struct {
	seed      uint64
	outcome   string
	turns     int
	battles   int
	level     int
	trials    int
	knowledge int
}

// player explores areas in order, skipping cleared ones, and attacks with
// the weakness of any guardian it has heard a hint about.
type player struct {
	catalog  *models.Catalog
	progress *engine.Progress
	rng      engine.Random
	narrator engine.Narrator
	log      zerolog.Logger

	known map[string]string // guardian name -> weakness
	next  int
}

func (p *player) nextArea() string {
	areas := p.catalog.AllAreas()
	for range areas {
		area := areas[p.next%len(areas)]
		p.next++
		g, ok := p.catalog.GuardianByArea(area)
		if !ok || !p.progress.HasCompleted(g.Name) {
			return area
		}
	}
	return areas[0]
}

func (p *player) command(g models.Guardian) string {
	if w, ok := p.known[g.Name]; ok {
		return "aws configure " + w
	}
	return fallbackCommand
}

func (p *player) strongestSkill() string {
	best := p.catalog.StartingSkill
	power := -1
	for _, name := range p.progress.Skills() {
		if s, ok := p.catalog.SkillByName(name); ok && s.Power > power {
			best, power = name, s.Power
		}
	}
	return best
}

// heal uses an item that restores motivation, if one is carried.
func (p *player) heal(b *engine.Battle) bool {
	if p.progress.Stat(engine.StatMotivation) > 40 {
		return false
	}
	for _, name := range p.progress.Items() {
		it, ok := p.catalog.ItemByName(name)
		if !ok {
			continue
		}
		if slices.ContainsFunc(it.Effects, func(e models.Effect) bool { return e.Stat == string(engine.StatMotivation) }) {
			b.Choose(engine.ActionItem)
			return b.SelectItem(name) == nil
		}
	}
	return false
}

func (p *player) fight(g models.Guardian) engine.Outcome {
	b := engine.NewBattle(g, engine.BattleConfig{
		Catalog:  p.catalog,
		Progress: p.progress,
		Random:   p.rng,
		Log:      p.log,
	})
	b.Advance()

	for !b.Concluded() {
		switch b.State() {
		case engine.StatePlayerTurn:
			if p.heal(b) {
				continue
			}
			b.Choose(engine.ActionAttack)
			if err := b.SelectSkill(p.strongestSkill()); err != nil {
				p.log.Error().Err(err).Msg("skill rejected")
				b.Back()
				b.Choose(engine.ActionRun)
				continue
			}
			b.SetCommand(p.command(g))
			if err := b.Submit(); err != nil {
				p.log.Error().Err(err).Msg("command rejected")
			}
		default:
			b.Advance()
		}
	}
	p.log.Debug().Str("guardian", g.Name).Str("outcome", string(b.Outcome())).Msg("battle over")
	return b.Outcome()
}

func (p *player) play(ctx context.Context, s uint64) result {
	res := result{seed: s, outcome: "turn limit"}
	resolver := engine.NewResolver(p.catalog, p.progress, p.rng, p.log)
	guardians := p.catalog.GuardianNames()

	for res.turns < maxTurns {
		res.turns++
		enc := resolver.Explore(p.nextArea())
		switch enc.Kind {
		case engine.EncounterBattle:
			res.battles++
			p.fight(enc.Guardian)
		case engine.EncounterHint:
			p.known[enc.Guardian.Name] = enc.Guardian.Weakness
			if p.narrator != nil {
				if line, err := p.narrator.Rumor(ctx, enc.Area, enc.Guardian); err == nil {
					p.log.Info().Str("guardian", enc.Guardian.Name).Str("rumor", line).Msg("rumor")
				}
			}
		}

		if p.progress.IsGameOver() {
			res.outcome = "game over"
			break
		}
		if p.progress.IsGameComplete(guardians) {
			res.outcome = "complete"
			break
		}
	}

	st := p.progress.Stats()
	res.level, res.knowledge = st.Level, st.Knowledge
	res.trials = len(p.progress.CompletedTrials())
	return res
}

func simulate(ctx context.Context) error {
	v, err := config.New("")
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var catalog *models.Catalog
	if cfg.ContentDir != "" {
		catalog, err = models.LoadCatalogDir(cfg.ContentDir)
	} else {
		catalog, err = models.DefaultCatalog()
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	log := zerolog.Nop()
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	var narrator engine.Narrator
	if narrate {
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("--narrate needs GEMINI_API_KEY")
		}
		n, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("creating narrator: %w", err)
		}
		defer n.Close()
		narrator = n
	}

	results := make([]result, sessions)
	g, ctx := errgroup.WithContext(ctx)
	for i := range sessions {
		g.Go(func() error {
			s := seed + uint64(i)
			rng, err := engine.NewRandom(s)
			if err != nil {
				return err
			}
			p := &player{
				catalog:  catalog,
				progress: engine.NewProgress(fmt.Sprintf("Sim %d", i+1), catalog.StartingSkill),
				rng:      rng,
				narrator: narrator,
				log:      log.With().Uint64("seed", s).Logger(),
				known:    make(map[string]string),
			}
			results[i] = p.play(ctx, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(report(results))
	return nil
}

func report(results []result) string {
	counts := map[string]int{}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Seed", "Outcome", "Turns", "Battles", "Trials", "Level", "Knowledge")
	for _, r := range results {
		counts[r.outcome]++
		t.Row(
			strconv.FormatUint(r.seed, 10),
			r.outcome,
			strconv.Itoa(r.turns),
			strconv.Itoa(r.battles),
			strconv.Itoa(r.trials),
			strconv.Itoa(r.level),
			strconv.Itoa(r.knowledge),
		)
	}
	summary := fmt.Sprintf("complete: %d  game over: %d  turn limit: %d",
		counts["complete"], counts["game over"], counts["turn limit"])
	return t.Render() + "\n" + summary
}
