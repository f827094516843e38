// Package config provides YAML-based game configuration loading and
// difficulty management for corral.
package config

// CorralConfig contains the player-tunable settings that apply across all
// levels. Per-level settings (arena, gaps, hit-mode sequence) live in level
// files, not here.
type CorralConfig struct {
	Physics    CorralPhysics    `yaml:"physics"`
	Quiver     CorralQuiver     `yaml:"quiver"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CorralPhysics defines global physics modifiers.
type CorralPhysics struct {
	SpeedScale       float64 `yaml:"speed_scale"`        // multiplies every level's ball speed
	DirectHitPenalty float64 `yaml:"direct_hit_penalty"` // overrides the level penalty when > 0
}

// CorralQuiver defines the shot allowance behavior.
type CorralQuiver struct {
	Size             int     `yaml:"size"`              // 0 keeps the level's quiver
	RetrievalSeconds float64 `yaml:"retrieval_seconds"` // pause after the quiver empties
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time", "score", or "none"
	MaxAt int    `yaml:"max_at"` // ticks/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra ball speed at max difficulty
	GapWidening     float64 `yaml:"gap_widening"`     // fractional gap width increase at max
	QuiverReduction int     `yaml:"quiver_reduction"` // shots removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
