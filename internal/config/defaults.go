package config

import (
	_ "embed"
)

//go:embed defaults/stardodge.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, suitable for
// printing as a template for user customization.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultSimConfig returns the default simulation tuning.
// Kept in sync with the embedded defaults/stardodge.yaml.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      500,
			SpawnMargin: 40,
		},
		Player: PlayerConfig{
			X:               120,
			Radius:          20,
			Speed:           320,
			PointerDeadzone: 6,
		},
		Scroll: ScrollConfig{
			BaseSpeed:  180,
			MaxBoost:   260,
			BoostStep:  9,
			BoostEvery: 20,
			Multipliers: DifficultyValues{
				Easy:   0.85,
				Medium: 1.0,
				Hard:   1.25,
			},
		},
		Asteroids: AsteroidConfig{
			Spawn: SpawnConfig{
				BaseMs:         DifficultyValues{Easy: 900, Medium: 700, Hard: 520},
				IntervalFloor:  0.55,
				ShrinkPerPoint: 3.5,
				Offset:         40,
			},
			MinRadius:     14,
			MaxRadius:     28,
			SpeedScaleMin: 0.95,
			SpeedScaleMax: 1.25,
			Points:        5,
		},
		Aliens: AlienConfig{
			Spawn: SpawnConfig{
				BaseMs:         DifficultyValues{Easy: 1400, Medium: 1100, Hard: 800},
				IntervalFloor:  0.60,
				ShrinkPerPoint: 3.8,
				Offset:         60,
			},
			MinRadius:       18,
			MaxRadius:       26,
			SpeedMult:       1.12,
			SpeedScaleMin:   0.95,
			SpeedScaleMax:   1.20,
			Points:          8,
			WobbleAmplitude: 40,
			WobbleFrequency: 2.2,
			WobbleAgeRate:   2.0,
		},
	}
}
