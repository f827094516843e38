package config

import (
	_ "embed"
)

//go:embed defaults/corral.yaml
var defaultCorralYAML []byte

// DefaultCorralConfig returns the default corral configuration.
func DefaultCorralConfig() CorralConfig {
	return CorralConfig{
		Physics: CorralPhysics{
			SpeedScale:       1.0,
			DirectHitPenalty: 0, // 0 defers to the level/engine default
		},
		Quiver: CorralQuiver{
			Size:             0, // 0 defers to the level
			RetrievalSeconds: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GapWidening:     0.4,
				QuiverReduction: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCorralYAML
}
