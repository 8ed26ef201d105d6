package sim

import (
	"math"

	"github.com/vovakirdan/stardodge/internal/core"
)

const (
	// collisionShrink shrinks the obstacle radius in the collision test,
	// tilting near misses in the player's favor.
	collisionShrink = 0.9

	// passLead is the fraction of the obstacle radius its leading edge must
	// clear past the player column before the pass scores.
	passLead = 0.2

	// cullFactor: an obstacle is removed once x < -radius*cullFactor.
	cullFactor = 2.0
)

// Advance runs one physics pass over the obstacles in spawn order. For each
// obstacle it advances the position, applies the alien wobble, awards the
// pass score at most once, culls it when fully off the trailing edge, and
// tests for collision with the player. All checks use the post-advance
// position of the same tick.
//
// It returns the points accumulated this pass and whether a collision was
// detected. On the first collision the pass stops immediately; remaining
// obstacles are not evaluated that tick.
func (m *ObstacleManager) Advance(dt float64, player Player) (points int, collided bool) {
	kept := m.obstacles[:0]

	for i := range m.obstacles {
		ob := m.obstacles[i]

		ob.Pos.X -= ob.Speed * dt
		if ob.Kind == KindAlien {
			al := m.cfg.Aliens
			ob.Age += dt
			ob.Pos.Y += math.Sin((ob.Age*al.WobbleAgeRate+ob.WobblePhase)*al.WobbleFrequency) * al.WobbleAmplitude * dt
		}

		if !ob.Scored && ob.Pos.X+ob.Radius < player.Pos.X-ob.Radius*passLead {
			ob.Scored = true
			points += m.kindPoints(ob.Kind)
		}

		if ob.Pos.X < -ob.Radius*cullFactor {
			continue
		}

		if core.Dist(player.Pos, ob.Pos) < player.Radius+ob.Radius*collisionShrink {
			kept = append(kept, ob)
			kept = append(kept, m.obstacles[i+1:]...)
			m.obstacles = kept
			return points, true
		}

		kept = append(kept, ob)
	}

	m.obstacles = kept
	return points, false
}

// kindPoints returns the score awarded for passing an obstacle of the kind.
func (m *ObstacleManager) kindPoints(k Kind) int {
	if k == KindAlien {
		return m.cfg.Aliens.Points
	}
	return m.cfg.Asteroids.Points
}
