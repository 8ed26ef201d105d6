// Package sim implements the star-dodger simulation: a player dodges a
// procedurally spawned stream of asteroids and aliens scrolling across a
// fixed 800x500 field, scoring for every obstacle that passes behind it,
// until a collision ends the round.
//
// The package is pure game logic with no external dependencies. The platform
// layer drives it by calling Tick once per frame and reads state through
// Snapshot between ticks.
package sim

import (
	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// MaxTickSeconds bounds the simulation step regardless of wall-clock time
// between frames, so a suspended terminal cannot produce tunneling or huge
// score jumps on resume.
const MaxTickSeconds = 0.033

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome indicates what a tick produced.
type Outcome int

const (
	OutcomeContinued Outcome = iota
	OutcomeCollided
)

// TickResult is returned by Tick. On OutcomeCollided the round is over and
// FinalScore carries the score at the moment of collision.
type TickResult struct {
	Outcome    Outcome
	FinalScore int
}

// Player is the player-controlled entity: a collision circle at a position.
type Player struct {
	Pos    core.Vec2
	Radius float64
}

// Sim owns all mutable simulation state for one independent round-based
// session: player, obstacles, score, phase, difficulty, and spawn timers.
// It is not safe for concurrent use; exactly one Tick runs at a time by
// design of the frame-stepped execution model.
type Sim struct {
	cfg        config.SimConfig
	player     Player
	obstacles  *ObstacleManager
	score      int
	phase      Phase
	difficulty config.Difficulty
}

// New creates a simulation in the Menu phase with the given tuning and RNG
// seed. Difficulty starts at medium and persists across restarts.
func New(cfg config.SimConfig, seed int64) *Sim {
	s := &Sim{
		cfg:        cfg,
		phase:      PhaseMenu,
		difficulty: config.DifficultyMedium,
	}
	s.obstacles = NewObstacleManager(seed, cfg)
	s.resetRound()
	return s
}

// resetRound returns the round state to its initial values: player at the
// left-center home position, no obstacles, zero score, zero spawn timers.
// Difficulty and phase are untouched.
func (s *Sim) resetRound() {
	s.player = Player{
		Pos:    core.Vec2{X: s.cfg.Player.X, Y: s.cfg.Field.Height / 2},
		Radius: s.cfg.Player.Radius,
	}
	s.obstacles.Reset()
	s.score = 0
}

// StartRound transitions Menu -> Playing, resetting round state first.
// Calls outside the Menu phase are ignored.
func (s *Sim) StartRound() {
	if s.phase != PhaseMenu {
		return
	}
	s.resetRound()
	s.phase = PhasePlaying
}

// Restart resets round state. Called in GameOver it re-enters Playing; in
// Menu or Playing the phase is retained so callers decide whether to also
// transition.
func (s *Sim) Restart() {
	s.resetRound()
	if s.phase == PhaseGameOver {
		s.phase = PhasePlaying
	}
}

// SetDifficulty changes the difficulty. Allowed only while in the Menu
// phase; calls in any other phase are ignored (last accepted value wins).
// Unknown difficulty values are ignored as well.
func (s *Sim) SetDifficulty(d config.Difficulty) {
	if s.phase != PhaseMenu || !d.IsValid() {
		return
	}
	s.difficulty = d
}

// Tick advances the simulation by dt seconds under the given movement
// intent. It is a no-op unless the phase is Playing. dt is clamped to
// MaxTickSeconds.
func (s *Sim) Tick(dt float64, in core.Intent) TickResult {
	if s.phase != PhasePlaying {
		return TickResult{Outcome: OutcomeContinued}
	}

	if dt > MaxTickSeconds {
		dt = MaxTickSeconds
	}
	if dt < 0 {
		dt = 0
	}

	s.movePlayer(dt, in.Normalized())
	s.obstacles.Update(dt, s.score, s.difficulty)

	points, collided := s.obstacles.Advance(dt, s.player)
	s.score += points

	if collided {
		s.phase = PhaseGameOver
		return TickResult{Outcome: OutcomeCollided, FinalScore: s.score}
	}
	return TickResult{Outcome: OutcomeContinued}
}

// movePlayer applies both control modes additively: held directional keys
// and pointer-follow steering. The final position is clamped so the player
// circle stays fully inside the field.
func (s *Sim) movePlayer(dt float64, in core.Intent) {
	step := s.cfg.Player.Speed * dt
	start := s.player.Pos

	s.player.Pos.X += float64(in.Horizontal) * step
	s.player.Pos.Y += float64(in.Vertical) * step

	// Pointer steering is computed from the pre-move position so the two
	// control modes sum instead of compounding.
	if in.Pointer.Active {
		toTarget := core.Vec2{X: in.Pointer.X, Y: in.Pointer.Y}.Sub(start)
		if toTarget.Len() > s.cfg.Player.PointerDeadzone {
			s.player.Pos = s.player.Pos.Add(toTarget.Normalize().Scale(step))
		}
	}

	r := s.player.Radius
	s.player.Pos.X = core.ClampF(s.player.Pos.X, r, s.cfg.Field.Width-r)
	s.player.Pos.Y = core.ClampF(s.player.Pos.Y, r, s.cfg.Field.Height-r)
}

// Phase returns the current round lifecycle phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Difficulty returns the current difficulty setting.
func (s *Sim) Difficulty() config.Difficulty {
	return s.difficulty
}

// Player returns the player's current position and radius.
func (s *Sim) Player() Player {
	return s.player
}
