package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/asciisnake/internal/round"
	"github.com/samdwyer/asciisnake/internal/world"
)

// DefaultFPS is the classic six frames per second.
const DefaultFPS = 6

// Environment variables read by LoadConfig.
const (
	EnvWidth        = "SNAKE_WIDTH"
	EnvHeight       = "SNAKE_HEIGHT"
	EnvFPS          = "SNAKE_FPS"
	EnvSpawnOdds    = "SNAKE_SPAWN_ODDS"
	EnvSeed         = "SNAKE_SEED"
	EnvLogFile      = "SNAKE_LOG_FILE"
	EnvLogVerbosity = "SNAKE_LOG_VERBOSITY"
)

// Config holds game configuration options. It is fixed at process start.
type Config struct {
	Width     int // Grid width including the wall ring
	Height    int // Grid height including the wall ring
	FPS       int // Target ticks per second
	SpawnOdds int // 1-in-N food spawn roll per playing tick; 0 disables spawning

	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	LogFile      string // Empty discards logs; the terminal belongs to the screen
	LogVerbosity int
}

// DefaultConfig returns the classic 60x25 board at 6 FPS.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		FPS:       DefaultFPS,
		SpawnOdds: round.DefaultSpawnOdds,
	}
}

// LoadConfig builds a Config from the environment, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvFPS, &cfg.FPS},
		{EnvSpawnOdds, &cfg.SpawnOdds},
		{EnvLogVerbosity, &cfg.LogVerbosity},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", v.name, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	cfg.LogFile = os.Getenv(EnvLogFile)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can host a round.
func (c Config) Validate() error {
	var errs []error
	if c.Width < world.MinSize || c.Height < world.MinSize {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than %dx%d", c.Width, c.Height, world.MinSize, world.MinSize))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be at least 1, got %d", c.FPS))
	}
	if c.SpawnOdds < 0 {
		errs = append(errs, fmt.Errorf("spawn odds must not be negative, got %d", c.SpawnOdds))
	}
	return errors.Join(errs...)
}

// TickPeriod returns the target duration of one tick.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// RoundConfig returns the parameters for a new round.
func (c Config) RoundConfig() round.Config {
	rc := round.DefaultConfig()
	rc.Width = c.Width
	rc.Height = c.Height
	rc.SpawnOdds = c.SpawnOdds
	return rc
}
