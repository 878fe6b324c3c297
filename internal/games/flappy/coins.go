package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Coin is a collectible floating in an obstacle gap.
type Coin struct {
	X, Y  float64
	Size  float64
	Value int
}

// Advance scrolls the coin left at the obstacle speed.
func (c *Coin) Advance(speed, dt float64) {
	c.X -= speed * dt * baseHz
}

// IsOffscreen reports whether the coin has fully left the screen.
func (c Coin) IsOffscreen() bool {
	return c.X+c.Size/2 < 0
}

// CollectedBy reports whether the avatar centred at p reaches the coin.
func (c Coin) CollectedBy(p core.Point) bool {
	return core.CheckCollectiblePickup(p, core.Point{X: c.X, Y: c.Y}, c.Size)
}
