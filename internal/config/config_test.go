package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg SimConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultSimConfig()
	if cfg != want {
		t.Errorf("embedded YAML differs from DefaultSimConfig():\n got: %+v\nwant: %+v", cfg, want)
	}
}

func TestDefaultSimConfigSanity(t *testing.T) {
	cfg := DefaultSimConfig()

	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		t.Errorf("field dimensions invalid: %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Player.Radius <= 0 || cfg.Player.Radius*2 >= cfg.Field.Height {
		t.Errorf("player radius %v does not fit field height %v", cfg.Player.Radius, cfg.Field.Height)
	}
	if cfg.Player.X < cfg.Player.Radius {
		t.Errorf("player home column %v puts the player outside the left edge", cfg.Player.X)
	}
	if cfg.Asteroids.MinRadius > cfg.Asteroids.MaxRadius {
		t.Errorf("asteroid radius range inverted: [%v, %v]", cfg.Asteroids.MinRadius, cfg.Asteroids.MaxRadius)
	}
	if cfg.Aliens.MinRadius > cfg.Aliens.MaxRadius {
		t.Errorf("alien radius range inverted: [%v, %v]", cfg.Aliens.MinRadius, cfg.Aliens.MaxRadius)
	}
	if cfg.Aliens.Points <= cfg.Asteroids.Points {
		t.Errorf("aliens should be worth more than asteroids: %d vs %d", cfg.Aliens.Points, cfg.Asteroids.Points)
	}

	// Harder difficulties spawn faster and scroll faster
	if !(cfg.Asteroids.Spawn.BaseMs.Hard < cfg.Asteroids.Spawn.BaseMs.Medium &&
		cfg.Asteroids.Spawn.BaseMs.Medium < cfg.Asteroids.Spawn.BaseMs.Easy) {
		t.Errorf("asteroid spawn intervals not ordered: %+v", cfg.Asteroids.Spawn.BaseMs)
	}
	if !(cfg.Scroll.Multipliers.Easy < cfg.Scroll.Multipliers.Medium &&
		cfg.Scroll.Multipliers.Medium < cfg.Scroll.Multipliers.Hard) {
		t.Errorf("scroll multipliers not ordered: %+v", cfg.Scroll.Multipliers)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
field:
  width: 640
  height: 400
  spawn_margin: 30
player:
  x: 100
  radius: 15
  speed: 280
  pointer_deadzone: 5
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Field.Width != 640 || cfg.Field.Height != 400 {
		t.Errorf("field = %vx%v, expected 640x400", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Player.Radius != 15 {
		t.Errorf("player radius = %v, expected 15", cfg.Player.Radius)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [not a map"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		wantErr  bool
	}{
		{input: "easy", expected: DifficultyEasy},
		{input: "medium", expected: DifficultyMedium},
		{input: "hard", expected: DifficultyHard},
		{input: "brutal", wantErr: true},
		{input: "", wantErr: true},
		{input: "Easy", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDifficulty(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDifficulty(%q) should fail", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) error: %v", tc.input, err)
			}
			if d != tc.expected {
				t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.input, d, tc.expected)
			}
		})
	}
}

func TestDifficultyValuesFor(t *testing.T) {
	v := DifficultyValues{Easy: 1, Medium: 2, Hard: 3}

	tests := []struct {
		d        Difficulty
		expected float64
	}{
		{d: DifficultyEasy, expected: 1},
		{d: DifficultyMedium, expected: 2},
		{d: DifficultyHard, expected: 3},
		{d: Difficulty("unknown"), expected: 2}, // Falls back to medium
	}

	for _, tc := range tests {
		if got := v.For(tc.d); got != tc.expected {
			t.Errorf("For(%q) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}
