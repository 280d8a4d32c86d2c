package stalker

import (
	"math/rand"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

// Obstacle is a fixed hazard on the arena. The set generated for a run is
// immutable: standing near one conceals the player, touching one is lethal.
type Obstacle struct {
	Pos    core.Vec2
	Symbol rune // Decorative tag, no gameplay meaning
}

// obstacleSymbols is the fixed decorative tag set obstacles draw from.
var obstacleSymbols = []rune{'♠', '♣', '¶', '†', '◆'}

// GenerateField produces the obstacle layout for a run in a single pass over
// the interior grid cells (a one-cell border stays empty). Each cell outside
// the spawn keep-out zone becomes an obstacle with the configured probability,
// jittered from the cell center. There is no retry or failure mode.
func GenerateField(rng *rand.Rand, cfg config.GameConfig, spawn core.Vec2) []Obstacle {
	cell := cfg.Obstacles.CellSize
	cols := int(cfg.Arena.Width / cell)
	rows := int(cfg.Arena.Height / cell)

	var field []Obstacle
	for gy := 1; gy < rows-1; gy++ {
		for gx := 1; gx < cols-1; gx++ {
			center := core.Vec2{
				X: (float64(gx) + 0.5) * cell,
				Y: (float64(gy) + 0.5) * cell,
			}
			if core.Dist(center, spawn) < cfg.Obstacles.SpawnKeepOut {
				continue
			}
			if rng.Float64() >= cfg.Obstacles.Density {
				continue
			}
			jitter := core.Vec2{
				X: (rng.Float64()*2 - 1) * cfg.Obstacles.Jitter,
				Y: (rng.Float64()*2 - 1) * cfg.Obstacles.Jitter,
			}
			field = append(field, Obstacle{
				Pos:    center.Add(jitter),
				Symbol: obstacleSymbols[rng.Intn(len(obstacleSymbols))],
			})
		}
	}
	return field
}
