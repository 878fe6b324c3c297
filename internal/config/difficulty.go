package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level selected out-of-band.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the selectable difficulty levels in order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag or stored value to a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Index returns the preset's position in Presets, used for compact persistence.
func (p DifficultyPreset) Index() int {
	for i, q := range Presets {
		if q == p {
			return i
		}
	}
	return 1
}

// PresetAt is the inverse of Index. Out-of-range values select normal.
func PresetAt(i int) DifficultyPreset {
	if i < 0 || i >= len(Presets) {
		return DifficultyNormal
	}
	return Presets[i]
}

// SpeedMultiplier scales the global obstacle speed.
func (p DifficultyPreset) SpeedMultiplier() float64 {
	switch p {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// SpacingMultiplier scales the horizontal distance between obstacles.
func (p DifficultyPreset) SpacingMultiplier() float64 {
	switch p {
	case DifficultyEasy:
		return 1.15
	case DifficultyHard:
		return 0.9
	default:
		return 1.0
	}
}

// ApplyPreset selects the difficulty level on cfg.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
}

// Params are the tuning values in effect for a given score.
// They are never stored; callers recompute them whenever the score changes.
type Params struct {
	GapSize    float64
	MinGapSize float64
	Speed      float64 // Pixels per 60Hz tick
	Spacing    float64
}

// Curve maps cumulative score to Params.
type Curve struct {
	diff      DifficultyConfig
	baseSpeed float64
	spacing   float64
}

// NewCurve creates a curve from the configuration.
func NewCurve(cfg FlappyConfig) Curve {
	return Curve{
		diff:      cfg.Difficulty,
		baseSpeed: cfg.Obstacles.BaseSpeed,
		spacing:   cfg.Obstacles.Spacing,
	}
}

// GapSize returns max(minGap, baseGap - floor(score/interval) * reduction).
// Non-increasing in score and never below the minimum gap.
func (c Curve) GapSize(score int) float64 {
	if score < 0 {
		score = 0
	}
	interval := c.diff.ScoreInterval
	if interval <= 0 {
		interval = 1 // Prevent division by zero
	}
	steps := float64(score / interval)
	return math.Max(c.diff.MinGapSize, c.diff.BaseGapSize-steps*c.diff.ReductionPerInterval)
}

// Params returns the full tuning set for score.
func (c Curve) Params(score int) Params {
	return Params{
		GapSize:    c.GapSize(score),
		MinGapSize: c.diff.MinGapSize,
		Speed:      c.baseSpeed * c.diff.Preset.SpeedMultiplier(),
		Spacing:    c.spacing * c.diff.Preset.SpacingMultiplier(),
	}
}
