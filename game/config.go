package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/playfield"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parameters of a game.
type Config struct {
	// Width and Height are the visible playfield dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Gravity is the base tick unit. At level n one gravity tick fires every
	// Gravity/(n+1).
	Gravity time.Duration `yaml:"gravity"`

	// Seed drives the piece randomizer. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	StartLevel int `yaml:"start_level"`
}

// DefaultConfig returns the standard 10x20 game with a one second base tick.
func DefaultConfig() Config {
	return Config{
		Width:   playfield.DefaultWidth,
		Height:  playfield.DefaultHeight,
		Gravity: time.Second,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: playfield %dx%d is smaller than 4x4", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %s", ErrInvalidConfig, c.Gravity)
	}
	if c.StartLevel < 0 {
		return fmt.Errorf("%w: start_level must not be negative, got %d", ErrInvalidConfig, c.StartLevel)
	}
	return nil
}
