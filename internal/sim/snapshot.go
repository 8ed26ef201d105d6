package sim

import "github.com/vovakirdan/stardodge/internal/config"

// Snapshot is an immutable view of the simulation state for presentation
// layers. The renderer draws it, and the platform reads Score and Phase to
// gate overlays; nothing here aliases live simulation state.
type Snapshot struct {
	Phase      Phase
	Score      int
	Difficulty config.Difficulty
	Player     Player
	Obstacles  []ObstacleView
}

// ObstacleView is the presentation view of one obstacle.
type ObstacleView struct {
	Kind   Kind
	X, Y   float64
	Radius float64
	Scored bool
}

// Snapshot captures the current state. Always safe to call, in any phase;
// presentation layers call it between ticks.
func (s *Sim) Snapshot() Snapshot {
	obs := make([]ObstacleView, len(s.obstacles.obstacles))
	for i, ob := range s.obstacles.obstacles {
		obs[i] = ObstacleView{
			Kind:   ob.Kind,
			X:      ob.Pos.X,
			Y:      ob.Pos.Y,
			Radius: ob.Radius,
			Scored: ob.Scored,
		}
	}

	return Snapshot{
		Phase:      s.phase,
		Score:      s.score,
		Difficulty: s.difficulty,
		Player:     s.player,
		Obstacles:  obs,
	}
}
