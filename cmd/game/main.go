package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tatianab/forest-quest/internal/config"
	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/models"
	"github.com/tatianab/forest-quest/internal/tui"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "forest-quest",
	Short: "Amazon Forest Quest: a terminal RPG about AWS services",
	Long: `Explore the Amazon Forest, collect items and defeat the seven AWS
Guardians by typing commands that hit their weaknesses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a forest-quest.yaml config file")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	v, err := config.New(configFile)
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(v)
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the game, so there is no console output.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return log, func() { f.Close() }, nil
}

func loadCatalog(cfg *config.Config) (*models.Catalog, error) {
	if cfg.ContentDir != "" {
		return models.LoadCatalogDir(cfg.ContentDir)
	}
	return models.DefaultCatalog()
}

func play(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	rng, err := engine.NewRandom(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seeding random source: %w", err)
	}

	opts := tui.Options{
		Catalog:        catalog,
		Random:         rng,
		Clock:          engine.SystemClock,
		FPS:            cfg.FPS,
		AnimationDelay: cfg.AnimationDelay,
		Log:            log,
	}

	if cfg.GeminiAPIKey != "" {
		narrator, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("narrator disabled")
		} else {
			defer narrator.Close()
			opts.Narrator = narrator
		}
	}

	var progOpts []tea.ProgramOption
	if cfg.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	log.Info().Int("fps", cfg.FPS).Bool("narrator", opts.Narrator != nil).Msg("starting game")
	if err := tui.Run(tui.NewManager(opts), progOpts...); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	log.Info().Msg("game exited")
	return nil
}
