// Package config provides YAML-based tuning configuration and difficulty
// handling for the simulation.
package config

// SimConfig contains all tuning parameters for the simulation.
type SimConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Aliens    AlienConfig    `yaml:"aliens"`
}

// FieldConfig defines the virtual playfield.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Vertical margin obstacles never spawn inside
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	X               float64 `yaml:"x"`      // Fixed home column, field units from the left edge
	Radius          float64 `yaml:"radius"` // Collision circle radius
	Speed           float64 `yaml:"speed"`  // Movement speed, field units per second
	PointerDeadzone float64 `yaml:"pointer_deadzone"`
}

// ScrollConfig defines base obstacle scroll speed and its score-driven boost.
type ScrollConfig struct {
	BaseSpeed   float64          `yaml:"base_speed"`
	MaxBoost    float64          `yaml:"max_boost"`   // Cap on the score-driven speed boost
	BoostStep   float64          `yaml:"boost_step"`  // Boost added per BoostEvery points of score
	BoostEvery  float64          `yaml:"boost_every"` // Score bucket size for one boost step
	Multipliers DifficultyValues `yaml:"multipliers"` // Per-difficulty scroll speed scalar
}

// SpawnConfig defines a spawn timer for one obstacle kind.
type SpawnConfig struct {
	BaseMs         DifficultyValues `yaml:"base_ms"`          // Base spawn interval per difficulty, ms
	IntervalFloor  float64          `yaml:"interval_floor"`   // Fraction of base the interval never shrinks below
	ShrinkPerPoint float64          `yaml:"shrink_per_point"` // Interval reduction in ms per point of score
	Offset         float64          `yaml:"offset"`           // Spawn x offset past the field's trailing edge
}

// AsteroidConfig defines asteroid spawn attributes.
type AsteroidConfig struct {
	Spawn         SpawnConfig `yaml:"spawn"`
	MinRadius     float64     `yaml:"min_radius"`
	MaxRadius     float64     `yaml:"max_radius"`
	SpeedScaleMin float64     `yaml:"speed_scale_min"` // Per-instance random speed scale range
	SpeedScaleMax float64     `yaml:"speed_scale_max"`
	Points        int         `yaml:"points"` // Score awarded for passing one
}

// AlienConfig defines alien spawn attributes and the wobble oscillation.
type AlienConfig struct {
	Spawn         SpawnConfig `yaml:"spawn"`
	MinRadius     float64     `yaml:"min_radius"`
	MaxRadius     float64     `yaml:"max_radius"`
	SpeedMult     float64     `yaml:"speed_mult"` // Aliens are slightly faster than asteroids
	SpeedScaleMin float64     `yaml:"speed_scale_min"`
	SpeedScaleMax float64     `yaml:"speed_scale_max"`
	Points        int         `yaml:"points"`

	// Vertical oscillation: y += sin((age*age_rate + phase) * frequency) * amplitude * dt
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleFrequency float64 `yaml:"wobble_frequency"`
	WobbleAgeRate   float64 `yaml:"wobble_age_rate"`
}
