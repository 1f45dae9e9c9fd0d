package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var ErrInvalidConfig = errors.New("invalid config")

// Full configuration of the tictactoe binary
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Game   GameConfig   `yaml:"game"`
	Report ReportConfig `yaml:"report"`
	Arena  ArenaConfig  `yaml:"arena"`

	// zerolog level name: trace, debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

type EngineConfig struct {
	// 0 = exact on 3x3, minimax.DefaultDepthLimited on 4x4
	Depth     int    `yaml:"depth"`
	AlphaBeta bool   `yaml:"alpha_beta"`
	TieBreak  string `yaml:"tie_break"` // first, random
	// Fixed seed of the engine's random source, 0 uses the seed generator
	Seed int64 `yaml:"seed"`
}

type GameConfig struct {
	Size int    `yaml:"size"`
	AI   string `yaml:"ai"` // x, o
}

type ReportConfig struct {
	Top    int  `yaml:"top"`
	Color  bool `yaml:"color"`
	Replay bool `yaml:"replay"`
}

type ArenaConfig struct {
	Games       int    `yaml:"games"`
	Workers     int    `yaml:"workers"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func Default() Config {
	return Config{
		Engine: EngineConfig{
			AlphaBeta: true,
			TieBreak:  minimax.TieBreakFirst.String(),
		},
		Game: GameConfig{
			Size: minimax.ExactGridSize,
			AI:   "o",
		},
		Report: ReportConfig{
			Top: 3,
		},
		Arena: ArenaConfig{
			Games:   100,
			Workers: 4,
		},
		LogLevel: "warn",
	}
}

// Load the defaults, overridden by the YAML file at 'path' (if not empty)
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Decode YAML into 'config' and validate the result, unknown keys are rejected
func Parse(data []byte, config *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return config.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Game.Size != minimax.ExactGridSize && c.Game.Size != minimax.DepthLimitedGridSize:
		return fmt.Errorf("%w: game.size must be %d or %d, got %d",
			ErrInvalidConfig, minimax.ExactGridSize, minimax.DepthLimitedGridSize, c.Game.Size)
	case c.Engine.Depth < 0:
		return fmt.Errorf("%w: engine.depth must be >= 0", ErrInvalidConfig)
	case c.Arena.Games < 1:
		return fmt.Errorf("%w: arena.games must be >= 1", ErrInvalidConfig)
	case c.Arena.Workers < 1:
		return fmt.Errorf("%w: arena.workers must be >= 1", ErrInvalidConfig)
	}

	if _, err := c.TieBreak(); err != nil {
		return err
	}
	if _, err := c.AIPlayer(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) TieBreak() (minimax.TieBreakPolicy, error) {
	switch strings.ToLower(c.Engine.TieBreak) {
	case "", "first":
		return minimax.TieBreakFirst, nil
	case "random":
		return minimax.TieBreakRandom, nil
	}
	return minimax.TieBreakFirst, fmt.Errorf("%w: unknown tie_break %q", ErrInvalidConfig, c.Engine.TieBreak)
}

func (c Config) AIPlayer() (board.Player, error) {
	p, err := board.ParsePlayer(c.Game.AI)
	if err != nil {
		return board.None, fmt.Errorf("%w: game.ai: %v", ErrInvalidConfig, err)
	}
	return p, nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// Engine limits described by the config, for given grid size
func (c Config) Limits() *minimax.Limits {
	tieBreak, _ := c.TieBreak()
	limits := minimax.DefaultLimitsFor(c.Game.Size).
		SetAlphaBeta(c.Engine.AlphaBeta).
		SetTieBreak(tieBreak)
	if c.Engine.Depth > 0 {
		limits.SetDepth(c.Engine.Depth)
	}
	return limits
}

// New engine with the configured limits, seed and logger
func (c Config) NewEngine(logger zerolog.Logger) *minimax.Engine {
	engine := minimax.NewEngine(c.Limits())
	engine.SetLogger(logger)
	if c.Engine.Seed != 0 {
		engine.SetSeed(c.Engine.Seed)
	}
	return engine
}

// Colour profile for reports, termenv.Ascii unless colours are enabled
func (c Config) Profile() termenv.Profile {
	if !c.Report.Color {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
