package stalker

import (
	"math/rand"

	"github.com/sakhare12/selfstalker/internal/core"
)

// Particle is a short-lived cosmetic entity. Life starts at 1.0 and decays
// each tick; a particle at life <= 0 is removed.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64
	Color core.Color
}

// ParticleSystem owns all live particles. Bursts are small and decay
// naturally within ~50 ticks, so there is no hard cap.
type ParticleSystem struct {
	p []Particle
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.p = ps.p[:0]
}

// EmitBurst spawns count particles at origin with velocity components
// independently uniform in [-speed, speed] on each axis.
func (ps *ParticleSystem) EmitBurst(rng *rand.Rand, origin core.Vec2, col core.Color, count int, speed float64) {
	for i := 0; i < count; i++ {
		ps.p = append(ps.p, Particle{
			Pos: origin,
			Vel: core.Vec2{
				X: (rng.Float64()*2 - 1) * speed,
				Y: (rng.Float64()*2 - 1) * speed,
			},
			Life:  1.0,
			Color: col,
		})
	}
}

// Update integrates one tick of motion, decays life, and culls dead
// particles with swap-remove.
func (ps *ParticleSystem) Update(decay float64) {
	for i := 0; i < len(ps.p); {
		p := &ps.p[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= decay
		if p.Life <= 0 {
			ps.p[i] = ps.p[len(ps.p)-1]
			ps.p = ps.p[:len(ps.p)-1]
			continue
		}
		i++
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.p)
}

// All returns a copy of the live particles for snapshotting.
func (ps *ParticleSystem) All() []Particle {
	out := make([]Particle, len(ps.p))
	copy(out, ps.p)
	return out
}
