package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// baseHz is the tick rate the per-tick constants are tuned for.
const baseHz = 60.0

// Avatar is the player-controlled bird.
// X is fixed during a run; Y and VelY change every tick.
type Avatar struct {
	X, Y            float64
	VelY            float64
	Radius          float64 // Visual radius
	CollisionRadius float64 // Hitbox radius, smaller than Radius

	physics config.PhysicsConfig
	anim    *Animator
}

// NewAvatar creates an avatar at the configured spawn point.
func NewAvatar(cfg config.FlappyConfig) *Avatar {
	a := &Avatar{
		Radius:          cfg.Avatar.Radius,
		CollisionRadius: cfg.Avatar.CollisionRadius,
		physics:         cfg.Physics,
		anim:            NewAnimator(cfg.Animation),
	}
	a.Reset(cfg.Avatar.SpawnX, cfg.Avatar.SpawnY)
	return a
}

// Reset re-homes the avatar at (x, y) at rest.
func (a *Avatar) Reset(x, y float64) {
	a.X = x
	a.Y = y
	a.VelY = 0
	a.anim.Reset()
}

// Jump sets the upward impulse unconditionally and leaves a trail burst.
func (a *Avatar) Jump() {
	a.VelY = a.physics.JumpImpulse
	a.anim.Burst(a.X, a.Y)
}

// Integrate advances velocity and position by dt seconds.
// Per-tick constants are scaled by dt*60. Gravity only accelerates below the
// ceiling; above it the velocity decays exponentially towards MaxVelocity
// (v = v*d + max*(1-d) per tick) so the sprite never visibly snaps.
func (a *Avatar) Integrate(dt float64) {
	scale := dt * baseHz
	ceiling := a.physics.MaxVelocity

	if a.VelY < ceiling {
		a.VelY += a.physics.Gravity * scale
	}
	if a.VelY > ceiling {
		a.VelY = ceiling + (a.VelY-ceiling)*math.Pow(a.physics.Damping, scale)
	}

	a.Y += a.VelY * scale
}

// Update runs one simulation tick: integrate, then advance the animation.
func (a *Avatar) Update(dt float64) {
	a.Integrate(dt)
	a.anim.Tick(a.VelY)
}

// Animation returns the composed animation state.
func (a *Avatar) Animation() *Animator {
	return a.anim
}

// Center returns the avatar position as a point.
func (a *Avatar) Center() core.Point {
	return core.Point{X: a.X, Y: a.Y}
}

// Bounds returns the visual bounding box.
func (a *Avatar) Bounds() core.Rect {
	return core.RectAround(a.X, a.Y, a.Radius)
}

// CollisionBox returns the forgiving hitbox used for obstacle tests.
func (a *Avatar) CollisionBox() core.Rect {
	return core.RectAround(a.X, a.Y, a.CollisionRadius)
}
