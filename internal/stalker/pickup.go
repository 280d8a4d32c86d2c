package stalker

import (
	"math/rand"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

// Pickup is the single collectible on the arena. IDs increase monotonically
// within a run; a collected pickup is replaced, never mutated.
type Pickup struct {
	ID  uint64
	Pos core.Vec2
}

// PlacePickup samples a position from the arena interior (inset from the
// edges) until it clears every obstacle by the configured distance. If the
// retry budget runs out, the last sample is accepted anyway: occasional
// overlap is tolerable, a missing pickup is not.
func PlacePickup(rng *rand.Rand, cfg config.GameConfig, obstacles []Obstacle, id uint64) Pickup {
	inset := cfg.Pickup.EdgeInset
	var pos core.Vec2
	for i := 0; i < cfg.Pickup.RetryBudget; i++ {
		pos = core.Vec2{
			X: inset + rng.Float64()*(cfg.Arena.Width-2*inset),
			Y: inset + rng.Float64()*(cfg.Arena.Height-2*inset),
		}
		if clearOfObstacles(pos, obstacles, cfg.Pickup.MinObstacleDist) {
			break
		}
	}
	return Pickup{ID: id, Pos: pos}
}

func clearOfObstacles(pos core.Vec2, obstacles []Obstacle, minDist float64) bool {
	for _, ob := range obstacles {
		if core.Dist(pos, ob.Pos) < minDist {
			return false
		}
	}
	return true
}
