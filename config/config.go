// Package config loads the settings of the draughts program from defaults,
// an optional file and DRAUGHTS_ prefixed environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"

	"draughts/game"
	"draughts/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "DRAUGHTS"

const (
	ModeHuman = "human" // A person on the console against the search
	ModeSelf  = "self"  // The search against itself
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width           int    `mapstructure:"width"`
	PiecesPerPlayer int    `mapstructure:"pieces_per_player"`
	DrawAmount      int    `mapstructure:"draw_amount"`
	AIDepth         int    `mapstructure:"ai_depth"`
	HintDepth       int    `mapstructure:"hint_depth"`
	Player1Name     string `mapstructure:"player1_name"`
	Player2Name     string `mapstructure:"player2_name"`
	Mode            string `mapstructure:"mode"`
	Seed            uint64 `mapstructure:"seed"`
	LogLevel        string `mapstructure:"log_level"`
	MaxTurns        int    `mapstructure:"max_turns"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", game.DefaultWidth)
	v.SetDefault("pieces_per_player", game.DefaultPiecesPerPlayer)
	v.SetDefault("draw_amount", game.DefaultDrawAmount)
	v.SetDefault("ai_depth", searcher.DefaultDepth)
	v.SetDefault("hint_depth", 5)
	v.SetDefault("player1_name", "me")
	v.SetDefault("player2_name", "ai")
	v.SetDefault("mode", ModeHuman)
	v.SetDefault("seed", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_turns", 300)
}

// Load reads the config file at cfgPath, if given, on top of the defaults.
// Environment variables such as DRAUGHTS_AI_DEPTH override both.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width < 3 || c.Width > 26:
		return fmt.Errorf("%w: width %d must be between 3 and 26", ErrInvalidConfig, c.Width)
	case c.PiecesPerPlayer <= 0:
		return fmt.Errorf("%w: pieces_per_player must be positive", ErrInvalidConfig)
	case 4*c.PiecesPerPlayer > c.Width*c.Width:
		return fmt.Errorf("%w: %d pieces per player do not fit on a board of width %d", ErrInvalidConfig, c.PiecesPerPlayer, c.Width)
	case c.DrawAmount <= 0:
		return fmt.Errorf("%w: draw_amount must be positive", ErrInvalidConfig)
	case c.AIDepth < 1 || c.HintDepth < 1:
		return fmt.Errorf("%w: search depths must be at least 1", ErrInvalidConfig)
	case c.Mode != ModeHuman && c.Mode != ModeSelf:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	case c.MaxTurns <= 0:
		return fmt.Errorf("%w: max_turns must be positive", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GameOptions translates the board settings into game options.
func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithWidth(c.Width),
		game.WithPiecesPerPlayer(c.PiecesPerPlayer),
		game.WithDrawAmount(c.DrawAmount),
		game.WithPlayerNames(c.Player1Name, c.Player2Name),
	}
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
