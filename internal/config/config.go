// Package config provides YAML-based game configuration loading and
// difficulty presets for Self Stalker.
package config

import (
	"fmt"
	"math"
)

// GameConfig contains every tunable of the simulation. All distances are in
// arena units, all rates are per tick (one tick = one simulation time unit).
type GameConfig struct {
	Arena     ArenaConfig      `yaml:"arena"`
	Player    PlayerConfig     `yaml:"player"`
	Shadow    ShadowConfig     `yaml:"shadow"`
	Obstacles ObstaclesConfig  `yaml:"obstacles"`
	Pickup    PickupConfig     `yaml:"pickup"`
	Effects   EffectsConfig    `yaml:"effects"`
	Preset    DifficultyPreset `yaml:"preset"`
}

// ArenaConfig defines the playfield rectangle.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player movement and size.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // Displacement per tick, diagonal included
	Radius float64 `yaml:"radius"` // Collision and bounds-clamp radius
}

// ShadowConfig defines the delayed pursuer.
type ShadowConfig struct {
	DelayTicks int     `yaml:"delay_ticks"` // Replay delay of the position trail
	GraceTicks int     `yaml:"grace_ticks"` // No shadow collision before this tick
	CatchScale float64 `yaml:"catch_scale"` // Catch distance = scale * player radius
}

// ObstaclesConfig defines the generated obstacle field.
type ObstaclesConfig struct {
	CellSize        float64 `yaml:"cell_size"`        // Grid cell edge for placement
	Density         float64 `yaml:"density"`          // Per-cell inclusion probability
	Jitter          float64 `yaml:"jitter"`           // Max offset from cell center per axis
	SpawnKeepOut    float64 `yaml:"spawn_keep_out"`   // Obstacle-free radius around spawn
	HideRadius      float64 `yaml:"hide_radius"`      // Concealment distance
	CollisionRadius float64 `yaml:"collision_radius"` // Lethal contact distance
}

// PickupConfig defines collectible placement.
type PickupConfig struct {
	Radius          float64 `yaml:"radius"`
	EdgeInset       float64 `yaml:"edge_inset"`        // Min distance from arena edges
	MinObstacleDist float64 `yaml:"min_obstacle_dist"` // Required clearance from obstacles
	RetryBudget     int     `yaml:"retry_budget"`      // Placement samples before giving up
}

// EffectsConfig defines transient visual/audio feedback.
type EffectsConfig struct {
	BurstCount    int     `yaml:"burst_count"`    // Particles per collection burst
	BurstSpeed    float64 `yaml:"burst_speed"`    // Velocity range [-v, v] per axis
	ParticleDecay float64 `yaml:"particle_decay"` // Life lost per tick
	ShakeBurst    float64 `yaml:"shake_burst"`    // Shake magnitude on impact
	ShakeDecay    float64 `yaml:"shake_decay"`    // Geometric decay factor per tick
	FootstepTicks int     `yaml:"footstep_ticks"` // Ticks between step sounds while moving
}

// Validate rejects configurations the simulation cannot run with. The tick
// path assumes a validated config and never re-checks these.
func (c GameConfig) Validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.speed", c.Player.Speed},
		{"player.radius", c.Player.Radius},
		{"shadow.catch_scale", c.Shadow.CatchScale},
		{"obstacles.cell_size", c.Obstacles.CellSize},
		{"obstacles.hide_radius", c.Obstacles.HideRadius},
		{"obstacles.collision_radius", c.Obstacles.CollisionRadius},
		{"pickup.radius", c.Pickup.Radius},
	} {
		if f.val <= 0 || math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("config: %s must be a positive finite number, got %v", f.name, f.val)
		}
	}

	if c.Arena.Width <= 2*c.Player.Radius || c.Arena.Height <= 2*c.Player.Radius {
		return fmt.Errorf("config: arena %gx%g too small for player radius %g",
			c.Arena.Width, c.Arena.Height, c.Player.Radius)
	}
	if c.Shadow.DelayTicks < 1 {
		return fmt.Errorf("config: shadow.delay_ticks must be >= 1, got %d", c.Shadow.DelayTicks)
	}
	if c.Shadow.GraceTicks < 0 {
		return fmt.Errorf("config: shadow.grace_ticks must be >= 0, got %d", c.Shadow.GraceTicks)
	}
	if c.Obstacles.Density < 0 || c.Obstacles.Density > 1 {
		return fmt.Errorf("config: obstacles.density must be in [0, 1], got %g", c.Obstacles.Density)
	}
	if c.Pickup.RetryBudget < 1 {
		return fmt.Errorf("config: pickup.retry_budget must be >= 1, got %d", c.Pickup.RetryBudget)
	}
	if c.Effects.ShakeDecay < 0 || c.Effects.ShakeDecay >= 1 {
		return fmt.Errorf("config: effects.shake_decay must be in [0, 1), got %g", c.Effects.ShakeDecay)
	}
	if c.Effects.ParticleDecay <= 0 {
		return fmt.Errorf("config: effects.particle_decay must be > 0, got %g", c.Effects.ParticleDecay)
	}

	return nil
}
