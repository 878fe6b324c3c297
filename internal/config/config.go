// Package config provides YAML-based game configuration loading and the
// score-driven difficulty curve for the flappy simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables for the flappy simulation.
// World units are pixels of a virtual portrait screen; speeds are expressed
// per 60Hz tick and scaled by the real frame delta at runtime.
type FlappyConfig struct {
	World        WorldConfig       `yaml:"world"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Avatar       AvatarConfig      `yaml:"avatar"`
	Animation    AnimationConfig   `yaml:"animation"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Hearts       HeartsConfig      `yaml:"hearts"`
}

// WorldConfig defines the virtual playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the ground surface.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines the avatar integrator constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity each 60Hz tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	MaxVelocity float64 `yaml:"max_velocity"` // Fall speed ceiling approached by damping
	Damping     float64 `yaml:"damping"`      // Weight kept per tick when over the ceiling
}

// AvatarConfig defines the avatar's spawn point and hitbox.
type AvatarConfig struct {
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnY          float64 `yaml:"spawn_y"`
	Radius          float64 `yaml:"radius"`           // Visual radius
	CollisionRadius float64 `yaml:"collision_radius"` // Smaller than Radius for forgiveness
}

// AnimationConfig defines wing flapping, tilt and trail parameters.
type AnimationConfig struct {
	TicksPerFrame  int     `yaml:"ticks_per_frame"`
	RotationFactor float64 `yaml:"rotation_factor"`
	MaxRotation    float64 `yaml:"max_rotation"` // Degrees, symmetric
	TrailBurst     int     `yaml:"trail_burst"`  // Particles spawned per jump
	TrailLife      int     `yaml:"trail_life"`   // Ticks a particle lives
	MaxTrail       int     `yaml:"max_trail"`
}

// ObstacleConfig defines obstacle geometry and scrolling.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	CapOverhang     float64 `yaml:"cap_overhang"`     // Cap extends this far past the body on each side
	Spacing         float64 `yaml:"spacing"`          // Horizontal distance between spawns
	MinTop          float64 `yaml:"min_top"`          // Smallest allowed gap top
	MinBottomMargin float64 `yaml:"min_bottom_margin"` // Space kept between gap bottom and ground
	BaseSpeed       float64 `yaml:"base_speed"`       // Pixels per 60Hz tick
	CollisionMargin float64 `yaml:"collision_margin"` // Forgiveness inset applied to the avatar box
}

// DifficultyConfig defines the gap-size curve and the selected preset.
type DifficultyConfig struct {
	Preset               DifficultyPreset `yaml:"preset"`
	BaseGapSize          float64          `yaml:"base_gap_size"`
	MinGapSize           float64          `yaml:"min_gap_size"`
	ScoreInterval        int              `yaml:"score_interval"`
	ReductionPerInterval float64          `yaml:"reduction_per_interval"`
}

// CollectibleConfig defines coins spawned inside obstacle gaps.
type CollectibleConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per obstacle, 0..1
	Size        float64 `yaml:"size"`
	Value       int     `yaml:"value"`
}

// HeartsConfig defines the life regeneration policy.
type HeartsConfig struct {
	MaxLives          int `yaml:"max_lives"`
	RegenIntervalSecs int `yaml:"regen_interval_secs"`
}

// RegenInterval returns the regeneration interval as a duration.
func (h HeartsConfig) RegenInterval() time.Duration {
	return time.Duration(h.RegenIntervalSecs) * time.Second
}

// Validate reports configuration that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world dimensions must be positive"))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v out of range", c.World.GroundHeight))
	}
	if c.Physics.MaxVelocity <= 0 {
		errs = append(errs, errors.New("max_velocity must be positive"))
	}
	if c.Physics.Damping < 0 || c.Physics.Damping >= 1 {
		errs = append(errs, fmt.Errorf("damping %v must be in [0, 1)", c.Physics.Damping))
	}
	if c.Avatar.CollisionRadius <= 0 || c.Avatar.CollisionRadius >= c.Avatar.Radius {
		errs = append(errs, errors.New("collision_radius must be positive and smaller than radius"))
	}
	if c.Animation.TicksPerFrame <= 0 {
		errs = append(errs, errors.New("ticks_per_frame must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Spacing <= 0 {
		errs = append(errs, errors.New("obstacle width and spacing must be positive"))
	}
	if c.Difficulty.MinGapSize <= 0 || c.Difficulty.BaseGapSize < c.Difficulty.MinGapSize {
		errs = append(errs, errors.New("gap sizes must satisfy 0 < min_gap_size <= base_gap_size"))
	}
	if playable := c.World.GroundY() - c.Obstacles.MinTop - c.Obstacles.MinBottomMargin; c.Difficulty.MinGapSize > playable {
		errs = append(errs, fmt.Errorf("min_gap_size %v exceeds the playable height %v", c.Difficulty.MinGapSize, playable))
	}
	if c.Difficulty.ScoreInterval <= 0 || c.Difficulty.ReductionPerInterval < 0 {
		errs = append(errs, errors.New("score_interval must be positive and reduction non-negative"))
	}
	if c.Hearts.MaxLives <= 0 || c.Hearts.RegenIntervalSecs <= 0 {
		errs = append(errs, errors.New("max_lives and regen_interval_secs must be positive"))
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
