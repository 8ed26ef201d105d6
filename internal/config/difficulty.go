package config

import "fmt"

// Difficulty is a named difficulty level. It scales both obstacle scroll
// speed and spawn interval bases.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a user-supplied string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, or hard)", s)
	}
}

// IsValid reports whether d is one of the known difficulty levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	return string(d)
}

// DifficultyValues holds one tuning value per difficulty level.
type DifficultyValues struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// For returns the value for the given difficulty.
// Unknown difficulties fall back to the medium value.
func (v DifficultyValues) For(d Difficulty) float64 {
	switch d {
	case DifficultyEasy:
		return v.Easy
	case DifficultyHard:
		return v.Hard
	default:
		return v.Medium
	}
}
