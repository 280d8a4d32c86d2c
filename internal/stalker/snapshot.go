package stalker

import (
	"math"

	"github.com/sakhare12/selfstalker/internal/core"
)

// Snapshot is the immutable per-frame view handed to the renderer. It is
// rebuilt each tick; the renderer never reaches into live engine state, so
// stepping and drawing can be split across tasks without read-during-update
// hazards. The obstacle slice is shared because the field never mutates
// within a run; everything else is copied.
type Snapshot struct {
	Phase Phase
	Tick  uint64

	ArenaW, ArenaH float64

	Player       core.Vec2
	PlayerRadius float64
	Hidden       bool

	Shadow    core.Vec2
	HasShadow bool
	Trail     []core.Vec2

	Obstacles []Obstacle

	Pickup    Pickup
	HasPickup bool

	Particles []Particle

	Score     int
	HighScore int
	Shake     float64

	Epitaph        string
	EpitaphPending bool
}

// Snapshot captures the current frame for rendering and testing.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          g.phase,
		Tick:           g.tick,
		ArenaW:         g.cfg.Arena.Width,
		ArenaH:         g.cfg.Arena.Height,
		Player:         g.player,
		PlayerRadius:   g.cfg.Player.Radius,
		Hidden:         g.hidden,
		Obstacles:      g.obstacles,
		Pickup:         g.pickup,
		HasPickup:      g.hasPickup,
		Particles:      g.particles.All(),
		Score:          g.score,
		HighScore:      g.highScore,
		Shake:          g.shake,
		Epitaph:        g.epitaph,
		EpitaphPending: g.epitaphPending,
	}
	if g.phase == PhaseGameOver {
		snap.Score = g.finalScore
	}
	if g.trail != nil {
		snap.Trail = g.trail.Positions()
		snap.Shadow, snap.HasShadow = g.trail.Shadow()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Player.X)
	h = h*31 + math.Float64bits(snap.Player.Y)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- score is non-negative
	h = h*31 + math.Float64bits(snap.Shake)
	h = h*31 + uint64(len(snap.Obstacles)) //#nosec G115 -- length is non-negative
	h = h*31 + uint64(len(snap.Particles)) //#nosec G115 -- length is non-negative
	h = h*31 + snap.Pickup.ID
	h = h*31 + math.Float64bits(snap.Pickup.Pos.X)
	h = h*31 + math.Float64bits(snap.Pickup.Pos.Y)
	if snap.HasShadow {
		h = h*31 + math.Float64bits(snap.Shadow.X)
		h = h*31 + math.Float64bits(snap.Shadow.Y)
	}
	if snap.Hidden {
		h = h*31 + 1
	}
	return h
}
