package config

// DifficultyPreset represents a named difficulty level. Presets are applied
// once at launch; there is no mid-run progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts a config for a difficulty preset. Unknown or empty
// presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// More headroom: the shadow lags further behind and the field is sparser.
		cfg.Shadow.DelayTicks = 90
		cfg.Shadow.GraceTicks = 90
		cfg.Obstacles.Density = 0.22
	case DifficultyHard:
		// Tighter pursuit through a denser field.
		cfg.Shadow.DelayTicks = 55
		cfg.Shadow.GraceTicks = 45
		cfg.Obstacles.Density = 0.34
		cfg.Player.Speed = 4.5
	case DifficultyNormal:
		// Config values stand as-is.
	}
	cfg.Preset = preset
}
