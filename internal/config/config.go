// Package config holds the tunables of a GoSet game and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config of one game. The zero value is not valid: start from Default.
type Config struct {
	// Duration of a game; the countdown ticks once per second.
	Duration time.Duration `yaml:"duration"`

	// NextRoundDelay between a correct answer and the next round.
	NextRoundDelay time.Duration `yaml:"next_round_delay"`

	// Reward added to the score on a correct answer.
	Reward int `yaml:"reward"`

	// Penalty subtracted from the score on a wrong answer.
	Penalty int `yaml:"penalty"`

	// RoundRetries is how many times a failed round is dealt again from scratch.
	RoundRetries int `yaml:"round_retries"`

	// Seed for the card dealer. 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// Default returns the standard game: 60 seconds, +1/-1 scoring.
func Default() Config {
	return Config{
		Duration:       60 * time.Second,
		NextRoundDelay: 500 * time.Millisecond,
		Reward:         1,
		Penalty:        1,
		RoundRetries:   3,
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys not present keep their default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadWithOverrides loads path, or the defaults if path is empty, and applies
// the non-zero command-line overrides on top.
func LoadWithOverrides(path string, duration time.Duration, seed uint64) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if duration != 0 {
		cfg.Duration = duration
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Duration < time.Second {
		errs = append(errs, fmt.Errorf("duration must be at least 1s, got %s", c.Duration))
	}
	if c.NextRoundDelay < 0 {
		errs = append(errs, fmt.Errorf("next_round_delay must not be negative, got %s", c.NextRoundDelay))
	}
	if c.Reward < 0 {
		errs = append(errs, fmt.Errorf("reward must not be negative, got %d", c.Reward))
	}
	if c.Penalty < 0 {
		errs = append(errs, fmt.Errorf("penalty must not be negative, got %d", c.Penalty))
	}
	if c.RoundRetries < 1 {
		errs = append(errs, fmt.Errorf("round_retries must be at least 1, got %d", c.RoundRetries))
	}
	return errors.Join(errs...)
}

// Seconds is the game duration in whole seconds.
func (c Config) Seconds() int {
	return int(c.Duration / time.Second)
}
