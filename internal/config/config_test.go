package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
	if cfg.Seconds() != 60 {
		t.Errorf("Expected 60 seconds, got %d", cfg.Seconds())
	}
	if cfg.NextRoundDelay != 500*time.Millisecond {
		t.Errorf("Expected 500ms delay, got %s", cfg.NextRoundDelay)
	}
	if cfg.Reward != 1 || cfg.Penalty != 1 {
		t.Errorf("Expected +1/-1 scoring, got +%d/-%d", cfg.Reward, cfg.Penalty)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("duration: 90s\npenalty: 2\nseed: 17\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Duration != 90*time.Second {
		t.Errorf("Expected duration 90s, got %s", cfg.Duration)
	}
	if cfg.Penalty != 2 {
		t.Errorf("Expected penalty 2, got %d", cfg.Penalty)
	}
	if cfg.Seed != 17 {
		t.Errorf("Expected seed 17, got %d", cfg.Seed)
	}
	// Untouched keys keep their defaults.
	if cfg.Reward != 1 || cfg.NextRoundDelay != 500*time.Millisecond || cfg.RoundRetries != 3 {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		yaml string
		want string
	}{
		{"duration: 0s", "duration"},
		{"next_round_delay: -1s", "next_round_delay"},
		{"reward: -1", "reward"},
		{"penalty: -3", "penalty"},
		{"round_retries: 0", "round_retries"},
		{"duration: [1, 2]", "parse config YAML"},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.yaml))
		if err == nil {
			t.Errorf("Parse(%q): expected error", tc.yaml)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("Parse(%q): error %q does not mention %q", tc.yaml, err, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goset.yaml")
	if err := os.WriteFile(path, []byte("duration: 30s\nnext_round_delay: 250ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seconds() != 30 || cfg.NextRoundDelay != 250*time.Millisecond {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error loading a missing file")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goset.yaml")
	if err := os.WriteFile(path, []byte("duration: 30s\nseed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOverrides(path, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 30*time.Second || cfg.Seed != 3 {
		t.Errorf("File values lost: %+v", cfg)
	}

	cfg, err = LoadWithOverrides(path, 45*time.Second, 9)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 45*time.Second || cfg.Seed != 9 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}

	cfg, err = LoadWithOverrides("", 0, 0)
	if err != nil || cfg != Default() {
		t.Errorf("Empty path should give the defaults, got %+v, %v", cfg, err)
	}

	if _, err := LoadWithOverrides("", 10*time.Millisecond, 0); err == nil {
		t.Errorf("Expected a validation error for a 10ms game")
	}
}

func TestExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "goset.yaml"))
	if err != nil {
		t.Fatalf("Example configuration does not load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Example configuration drifted from the defaults: %+v", cfg)
	}
}
