package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	ContentDir     string
	Seed           uint64
	FPS            int
	AnimationDelay time.Duration
	LogFile        string
	LogLevel       zerolog.Level
	AltScreen      bool
	Mouse          bool
}

const (
	EnvPrefix  = "FOREST_QUEST"
	ConfigName = "forest-quest"
)

// Defaults registers every key with its default value.
func Defaults(v *viper.Viper) {
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("content_dir", "")
	v.SetDefault("seed", 0)
	v.SetDefault("fps", 60)
	v.SetDefault("animation_delay", 2*time.Second)
	v.SetDefault("log_file", "forest-quest.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("alt_screen", true)
	v.SetDefault("mouse", true)
}

// New returns a viper instance wired to defaults, FOREST_QUEST_* environment
// variables and, when present, a forest-quest.yaml config file. An explicit
// file path must exist.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	Defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// LoadConfig resolves the configuration from v.
func LoadConfig(v *viper.Viper) (*Config, error) {
	apiKey := v.GetString("gemini_api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	cfg := &Config{
		GeminiAPIKey:   apiKey,
		GeminiModel:    v.GetString("gemini_model"),
		ContentDir:     v.GetString("content_dir"),
		Seed:           v.GetUint64("seed"),
		FPS:            v.GetInt("fps"),
		AnimationDelay: v.GetDuration("animation_delay"),
		LogFile:        v.GetString("log_file"),
		LogLevel:       level,
		AltScreen:      v.GetBool("alt_screen"),
		Mouse:          v.GetBool("mouse"),
	}

	if cfg.FPS < 1 || cfg.FPS > 240 {
		return nil, fmt.Errorf("fps must be between 1 and 240, got %d", cfg.FPS)
	}
	if cfg.AnimationDelay <= 0 {
		return nil, fmt.Errorf("animation_delay must be positive, got %s", cfg.AnimationDelay)
	}
	if cfg.GeminiAPIKey != "" && cfg.GeminiModel == "" {
		return nil, fmt.Errorf("gemini_model must be set when a Gemini API key is configured")
	}

	return cfg, nil
}
