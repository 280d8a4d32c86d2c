package config

import (
	_ "embed"
)

//go:embed defaults/selfstalker.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration. The values match
// the embedded defaults/selfstalker.yaml and are the documented calibration:
// one tick = one simulation time unit at a nominal 60 ticks per second.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  960,
			Height: 640,
		},
		Player: PlayerConfig{
			Speed:  4.0,
			Radius: 12,
		},
		Shadow: ShadowConfig{
			DelayTicks: 75,
			GraceTicks: 60,
			CatchScale: 1.6,
		},
		Obstacles: ObstaclesConfig{
			CellSize:        80,
			Density:         0.28,
			Jitter:          5,
			SpawnKeepOut:    140,
			HideRadius:      45,
			CollisionRadius: 22,
		},
		Pickup: PickupConfig{
			Radius:          10,
			EdgeInset:       60,
			MinObstacleDist: 45,
			RetryBudget:     100,
		},
		Effects: EffectsConfig{
			BurstCount:    25,
			BurstSpeed:    5,
			ParticleDecay: 0.02,
			ShakeBurst:    12,
			ShakeDecay:    0.85,
			FootstepTicks: 12,
		},
		Preset: DifficultyNormal,
	}
}
