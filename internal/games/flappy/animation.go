package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// WingFrame is one of the five sprite frames of the flapping cycle.
type WingFrame int

const (
	FrameNeutral    WingFrame = iota // Wings level
	FrameUpstroke                    // Transition towards wings up
	FrameWingsUp                     // Wings fully raised
	FrameDownstroke                  // Transition towards wings down
	FrameWingsDown                   // Wings fully lowered

	frameCount = 5
)

// String returns a human-readable name for the frame.
func (f WingFrame) String() string {
	switch f {
	case FrameNeutral:
		return "Neutral"
	case FrameUpstroke:
		return "Upstroke"
	case FrameWingsUp:
		return "WingsUp"
	case FrameDownstroke:
		return "Downstroke"
	case FrameWingsDown:
		return "WingsDown"
	default:
		return "Unknown"
	}
}

// Particle is an ephemeral trail dot left behind by a jump.
type Particle struct {
	X, Y float64
	Life int // Ticks remaining
}

// Animator drives the wing cycle, the tilt and the trail.
// It counts simulation ticks, never wall-clock time, so the flap speed is
// identical however the integrator is driven.
type Animator struct {
	cfg      config.AnimationConfig
	frame    WingFrame
	ticks    int
	rotation float64
	trail    []Particle
}

// NewAnimator creates an animator in the neutral pose.
func NewAnimator(cfg config.AnimationConfig) *Animator {
	a := &Animator{cfg: cfg}
	a.Reset()
	return a
}

// Reset returns to the neutral pose and drops the trail.
func (a *Animator) Reset() {
	a.frame = FrameNeutral
	a.ticks = 0
	a.rotation = 0
	a.trail = a.trail[:0]
}

// Tick advances the animation by one simulation tick.
// velY is the avatar's vertical velocity after integration.
func (a *Animator) Tick(velY float64) {
	a.ticks++
	if a.ticks >= a.cfg.TicksPerFrame {
		a.ticks = 0
		a.frame = (a.frame + 1) % frameCount
	}

	a.rotation = core.ClampF(velY*a.cfg.RotationFactor, -a.cfg.MaxRotation, a.cfg.MaxRotation)

	alive := a.trail[:0]
	for _, p := range a.trail {
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	a.trail = alive
}

// Burst spawns the jump particles at (x, y), dropping the oldest ones when
// the trail is full.
func (a *Animator) Burst(x, y float64) {
	for i := 0; i < a.cfg.TrailBurst; i++ {
		a.trail = append(a.trail, Particle{X: x - float64(i)*6, Y: y, Life: a.cfg.TrailLife})
	}
	if over := len(a.trail) - a.cfg.MaxTrail; over > 0 {
		a.trail = append(a.trail[:0], a.trail[over:]...)
	}
}

// Scroll shifts every particle horizontally so the trail moves with the world.
func (a *Animator) Scroll(dx float64) {
	for i := range a.trail {
		a.trail[i].X += dx
	}
}

// Frame returns the current wing frame (sprite index 0..4).
func (a *Animator) Frame() WingFrame {
	return a.frame
}

// Rotation returns the tilt in degrees; negative is nose up.
func (a *Animator) Rotation() float64 {
	return a.rotation
}

// Trail returns the live particles. The slice is owned by the animator.
func (a *Animator) Trail() []Particle {
	return a.trail
}
