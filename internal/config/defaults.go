package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// Kept in sync with defaults/flappy.yaml, which is what Load actually uses.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:        480,
			Height:       800,
			GroundHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -18,
			MaxVelocity: 15,
			Damping:     0.95,
		},
		Avatar: AvatarConfig{
			SpawnX:          100,
			SpawnY:          350,
			Radius:          30,
			CollisionRadius: 22,
		},
		Animation: AnimationConfig{
			TicksPerFrame:  5,
			RotationFactor: 1.5,
			MaxRotation:    20,
			TrailBurst:     3,
			TrailLife:      12,
			MaxTrail:       24,
		},
		Obstacles: ObstacleConfig{
			Width:           80,
			CapOverhang:     6,
			Spacing:         300,
			MinTop:          80,
			MinBottomMargin: 80,
			BaseSpeed:       3,
			CollisionMargin: 2,
		},
		Difficulty: DifficultyConfig{
			Preset:               DifficultyNormal,
			BaseGapSize:          260,
			MinGapSize:           170,
			ScoreInterval:        5,
			ReductionPerInterval: 10,
		},
		Collectibles: CollectibleConfig{
			SpawnChance: 0.35,
			Size:        24,
			Value:       1,
		},
		Hearts: HeartsConfig{
			MaxLives:          3,
			RegenIntervalSecs: 120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
