package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testAnimation() config.AnimationConfig {
	return config.AnimationConfig{
		TicksPerFrame:  5,
		RotationFactor: 1.5,
		MaxRotation:    20,
		TrailBurst:     3,
		TrailLife:      4,
		MaxTrail:       5,
	}
}

func TestAnimatorFrameCycle(t *testing.T) {
	a := NewAnimator(testAnimation())

	expected := []WingFrame{FrameUpstroke, FrameWingsUp, FrameDownstroke, FrameWingsDown, FrameNeutral}
	for _, want := range expected {
		for i := 0; i < 4; i++ {
			a.Tick(0)
		}
		if a.Frame() == want {
			t.Fatalf("frame advanced early to %v", want)
		}
		a.Tick(0)
		if a.Frame() != want {
			t.Fatalf("Frame() = %v, expected %v", a.Frame(), want)
		}
	}
}

func TestAnimatorRotation(t *testing.T) {
	a := NewAnimator(testAnimation())

	tests := []struct {
		vel      float64
		expected float64
	}{
		{0, 0},
		{4, 6},
		{-10, -15},
		{15, 20},
		{-18, -20},
	}
	for _, tc := range tests {
		a.Tick(tc.vel)
		if a.Rotation() != tc.expected {
			t.Errorf("Rotation() for v=%f = %f, expected %f", tc.vel, a.Rotation(), tc.expected)
		}
	}
}

func TestAnimatorTrailDecay(t *testing.T) {
	a := NewAnimator(testAnimation())
	a.Burst(100, 200)

	if got := len(a.Trail()); got != 3 {
		t.Fatalf("Burst() produced %d particles, expected 3", got)
	}

	for i := 0; i < 3; i++ {
		a.Tick(0)
	}
	if got := len(a.Trail()); got != 3 {
		t.Errorf("particles with life left should survive, got %d", got)
	}
	a.Tick(0)
	if got := len(a.Trail()); got != 0 {
		t.Errorf("particles should be removed once life reaches 0, got %d", got)
	}
}

func TestAnimatorTrailBounded(t *testing.T) {
	a := NewAnimator(testAnimation())
	a.Burst(0, 0)
	a.Tick(0)
	a.Burst(10, 10)

	trail := a.Trail()
	if len(trail) != 5 {
		t.Fatalf("trail length = %d, expected cap of 5", len(trail))
	}
	// The oldest particle is dropped first
	if trail[len(trail)-1].Life != 4 || trail[0].Life != 3 {
		t.Errorf("unexpected trail order: %+v", trail)
	}

	a.Scroll(-5)
	if a.Trail()[len(trail)-1].X != 10-2*6-5 {
		t.Errorf("Scroll() did not shift particles: %+v", a.Trail())
	}
}
