package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of barriers with an open gap between GapTop and GapBottom.
// The gap is fixed at spawn; only X changes afterwards.
type Obstacle struct {
	X           float64 // Left edge of the body
	Width       float64
	CapOverhang float64 // Cap extends this far past the body on both sides
	GapTop      float64
	GapBottom   float64
	Passed      bool // Set once by the caller after scoring
}

// GapSize returns the vertical opening.
func (o Obstacle) GapSize() float64 {
	return o.GapBottom - o.GapTop
}

// Right returns the trailing edge of the body.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Advance scrolls the obstacle left. The ×60 keeps speed, expressed per 60Hz
// tick, visually identical at any real tick rate.
func (o *Obstacle) Advance(speed, dt float64) {
	o.X -= speed * dt * baseHz
}

// IsOffscreen reports whether the trailing edge has left the screen.
func (o Obstacle) IsOffscreen() bool {
	return o.X+o.Width < 0
}

// HasBeenPassed reports a pass exactly once: the avatar is beyond the right
// edge and the flag is still clear. The caller sets the flag via MarkPassed.
func (o Obstacle) HasBeenPassed(avatarX float64) bool {
	return !o.Passed && avatarX > o.X+o.Width
}

// MarkPassed records that the pass has been consumed. It never reverts.
func (o *Obstacle) MarkPassed() {
	o.Passed = true
}

// TopRect returns the upper barrier body.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapTop)
}

// BottomRect returns the lower barrier body down to groundY.
func (o Obstacle) BottomRect(groundY float64) core.Rect {
	return core.NewRect(o.X, o.GapBottom, o.Width, groundY-o.GapBottom)
}

// Collides tests the avatar hitbox against the obstacle including its caps.
func (o Obstacle) Collides(box core.Rect, margin float64) bool {
	return core.CheckAvatarObstacleCollision(box, o.X-o.CapOverhang, o.Right()+o.CapOverhang, o.GapTop, o.GapBottom, margin)
}

// ObstacleField spawns, moves and discards obstacles.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	world     config.WorldConfig
	cfg       config.ObstacleConfig
	curve     config.Curve
}

// NewObstacleField creates an empty field. rng is the only source of
// randomness, so a seeded rng makes placement reproducible.
func NewObstacleField(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		world:     cfg.World,
		cfg:       cfg.Obstacles,
		curve:     config.NewCurve(cfg),
	}
}

// Reset clears all obstacles.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Spawn creates an obstacle at the right edge of the world. The gap size comes
// from the difficulty curve at score; its top is uniform in [minTop, maxTop].
// maxTop never goes negative and minTop is lowered to it when the range is
// inverted, which still yields a valid (if cramped) obstacle. A gap taller
// than the playfield is cut to the ground so the lower barrier never has a
// negative height.
func (f *ObstacleField) Spawn(score int) Obstacle {
	gap := math.Min(f.curve.GapSize(score), f.world.GroundY())

	minTop := f.cfg.MinTop
	maxTop := f.world.GroundY() - gap - f.cfg.MinBottomMargin
	if maxTop < 0 {
		maxTop = 0
	}
	if minTop > maxTop {
		minTop = maxTop
	}

	top := minTop + f.rng.Float64()*(maxTop-minTop)

	o := Obstacle{
		X:           f.world.Width,
		Width:       f.cfg.Width,
		CapOverhang: f.cfg.CapOverhang,
		GapTop:      top,
		GapBottom:   top + gap,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// NeedsSpawn reports whether the newest obstacle is at least spacing away
// from the right edge (or the field is empty).
func (f *ObstacleField) NeedsSpawn(spacing float64) bool {
	if len(f.obstacles) == 0 {
		return true
	}
	return f.obstacles[len(f.obstacles)-1].X <= f.world.Width-spacing
}

// Advance scrolls every obstacle.
func (f *ObstacleField) Advance(speed, dt float64) {
	for i := range f.obstacles {
		f.obstacles[i].Advance(speed, dt)
	}
}

// Prune discards offscreen obstacles and returns how many were removed.
func (f *ObstacleField) Prune() int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !o.IsOffscreen() {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// At returns a pointer to the i-th obstacle so callers can mark it passed.
func (f *ObstacleField) At(i int) *Obstacle {
	return &f.obstacles[i]
}

// Obstacles returns the live obstacles, oldest first.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}
