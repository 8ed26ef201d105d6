package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// Kind discriminates the obstacle variants.
type Kind int

const (
	KindAsteroid Kind = iota
	KindAlien
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindAlien:
		return "alien"
	default:
		return "unknown"
	}
}

// Obstacle is a single live obstacle. Obstacles drift in the negative-x
// direction toward the player. Age and WobblePhase are only meaningful for
// aliens, which additionally oscillate vertically.
type Obstacle struct {
	Kind   Kind
	Pos    core.Vec2
	Radius float64
	Speed  float64 // Horizontal speed, field units per second
	Scored bool    // At-most-once pass-scoring flag

	Age         float64 // Seconds since spawn (aliens)
	WobblePhase float64 // Random oscillation phase fixed at spawn (aliens)
}

// ObstacleManager handles spawning, movement, scoring, and removal of
// obstacles. The collection is kept in spawn order; evaluation iterates in
// that order so scoring behavior is reproducible under a fixed seed.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.SimConfig

	// Independent spawn timers in milliseconds, advanced by dt*1000 each
	// tick and reset to zero when a spawn fires.
	asteroidMs float64
	alienMs    float64
}

// NewObstacleManager creates an obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.SimConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Reset clears all obstacles and zeroes both spawn timers. The RNG is left
// alone so consecutive rounds draw from the same stream.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
	m.asteroidMs = 0
	m.alienMs = 0
}

// Obstacles returns the live collection in spawn order.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// SpawnInterval computes the current spawn interval in milliseconds for a
// kind's spawn tuning. Intervals shrink linearly with score and are floored
// at a fraction of the difficulty base to prevent runaway density.
func SpawnInterval(sp config.SpawnConfig, score int, d config.Difficulty) float64 {
	base := sp.BaseMs.For(d)
	return math.Max(base*sp.IntervalFloor, base-float64(score)*sp.ShrinkPerPoint)
}

// Update advances both spawn timers by dt and fires at most one spawn per
// kind. Thresholds are recomputed every tick from the current score and
// difficulty, so spawn gaps keep shrinking as the round progresses.
func (m *ObstacleManager) Update(dt float64, score int, d config.Difficulty) {
	ms := dt * 1000

	m.asteroidMs += ms
	if m.asteroidMs >= SpawnInterval(m.cfg.Asteroids.Spawn, score, d) {
		m.asteroidMs = 0
		m.spawnAsteroid(score, d)
	}

	m.alienMs += ms
	if m.alienMs >= SpawnInterval(m.cfg.Aliens.Spawn, score, d) {
		m.alienMs = 0
		m.spawnAlien(score, d)
	}
}

// scrollSpeed returns the shared base obstacle speed before per-instance
// randomization: the configured base scaled by difficulty plus a capped
// score-driven boost.
func (m *ObstacleManager) scrollSpeed(score int, d config.Difficulty) float64 {
	sc := m.cfg.Scroll
	boost := math.Min(sc.MaxBoost, float64(score)/sc.BoostEvery*sc.BoostStep)
	return sc.BaseSpeed*sc.Multipliers.For(d) + boost
}

// spawnY picks a uniformly random vertical spawn position inside the margin.
func (m *ObstacleManager) spawnY() float64 {
	margin := m.cfg.Field.SpawnMargin
	return m.randRange(margin, m.cfg.Field.Height-margin)
}

// speedJitter perturbs a base speed by up to +-10 percent.
func (m *ObstacleManager) speedJitter() float64 {
	return 1.0 + (m.rng.Float64()-0.5)*0.2
}

func (m *ObstacleManager) spawnAsteroid(score int, d config.Difficulty) {
	cfg := m.cfg.Asteroids
	speed := m.scrollSpeed(score, d) * m.speedJitter() * m.randRange(cfg.SpeedScaleMin, cfg.SpeedScaleMax)

	m.obstacles = append(m.obstacles, Obstacle{
		Kind:   KindAsteroid,
		Pos:    core.Vec2{X: m.cfg.Field.Width + cfg.Spawn.Offset, Y: m.spawnY()},
		Radius: m.randRange(cfg.MinRadius, cfg.MaxRadius),
		Speed:  speed,
	})
}

func (m *ObstacleManager) spawnAlien(score int, d config.Difficulty) {
	cfg := m.cfg.Aliens
	speed := m.scrollSpeed(score, d) * cfg.SpeedMult * m.speedJitter() * m.randRange(cfg.SpeedScaleMin, cfg.SpeedScaleMax)

	m.obstacles = append(m.obstacles, Obstacle{
		Kind:        KindAlien,
		Pos:         core.Vec2{X: m.cfg.Field.Width + cfg.Spawn.Offset, Y: m.spawnY()},
		Radius:      m.randRange(cfg.MinRadius, cfg.MaxRadius),
		Speed:       speed,
		WobblePhase: m.rng.Float64() * 2 * math.Pi,
	})
}

// randRange returns a uniform random value in [lo, hi).
func (m *ObstacleManager) randRange(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}
