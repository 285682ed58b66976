package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/skirmish/internal/world"
)

// Config holds game configuration options, read from SKIRMISH_* environment variables.
type Config struct {
	Width             int      `env:"SKIRMISH_WIDTH"               envDefault:"5"`
	Height            int      `env:"SKIRMISH_HEIGHT"              envDefault:"5"`
	MaxMovementPoints int      `env:"SKIRMISH_MAX_MOVEMENT_POINTS" envDefault:"3"`
	Entities          []string `env:"SKIRMISH_ENTITIES"            envDefault:"cloud,tifa,barret,aerith" envSeparator:","`

	UI        string `env:"SKIRMISH_UI"        envDefault:"text"` // "text" or "screen"
	LogLevel  string `env:"SKIRMISH_LOG_LEVEL" envDefault:"info"`
	Telemetry bool   `env:"SKIRMISH_TELEMETRY" envDefault:"false"`
}

// ParseConfig reads configuration from the process environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// ParseConfigFrom reads configuration from the given variables instead of the
// process environment. Unset variables take their defaults.
func ParseConfigFrom(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	cfg, err := ParseConfigFrom(map[string]string{})
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects configurations no game can start from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return world.Configurationf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxMovementPoints <= 0 {
		return world.Configurationf("max movement points must be positive, got %d", c.MaxMovementPoints)
	}
	switch c.UI {
	case "text", "screen":
	default:
		return world.Configurationf("unknown UI %q (want text or screen)", c.UI)
	}
	return nil
}
