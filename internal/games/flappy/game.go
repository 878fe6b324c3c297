// Package flappy implements the flappy simulation core: the bird, its
// animation, the scrolling obstacles and collectibles, and the per-tick loop
// that ties them together. Nothing here performs I/O.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game implements one run of the flappy game.
type Game struct {
	cfg       config.FlappyConfig
	pending   *config.FlappyConfig // Applied at the next Reset
	curve     config.Curve
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	avatar    *Avatar
	field     *ObstacleField
	coins     []Coin
	score     int  // Obstacles passed
	collected int  // Coin value picked up this run
	gameOver  bool // Whether the run has ended
	paused    bool // Whether the run is paused
	tickCount int  // Simulation ticks since Reset
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy"
}

// SetConfig queues a new configuration that takes effect on the next Reset,
// so a run in progress is never retuned mid-flight.
func (g *Game) SetConfig(cfg config.FlappyConfig) {
	g.pending = &cfg
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset initializes or restarts the run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.runtime = rt
	g.curve = config.NewCurve(g.cfg)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.avatar = NewAvatar(g.cfg)
	g.field = NewObstacleField(g.cfg, g.rng)
	g.coins = g.coins[:0]
	g.score = 0
	g.collected = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the run by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	if in.Has(core.ActionJump) {
		g.avatar.Jump()
	}
	g.avatar.Update(dt)

	// The ceiling stops the bird without ending the run
	if top := g.avatar.CollisionRadius; g.avatar.Y < top {
		g.avatar.Y = top
		if g.avatar.VelY < 0 {
			g.avatar.VelY = 0
		}
	}

	params := g.curve.Params(g.score)
	g.field.Advance(params.Speed, dt)
	for i := range g.coins {
		g.coins[i].Advance(params.Speed, dt)
	}
	g.avatar.Animation().Scroll(-params.Speed * dt * baseHz)

	for i := 0; i < g.field.Len(); i++ {
		o := g.field.At(i)
		if o.HasBeenPassed(g.avatar.X) {
			o.MarkPassed()
			g.score++
			events = append(events, core.Event{Kind: core.EventPassed, Points: 1})
		}
	}

	events = g.collectCoins(events)

	if g.checkCollision() {
		g.gameOver = true
		events = append(events, core.Event{Kind: core.EventCollision})
	}

	// Spawning uses the post-scoring difficulty
	params = g.curve.Params(g.score)
	if g.field.NeedsSpawn(params.Spacing) {
		o := g.field.Spawn(g.score)
		g.maybeSpawnCoin(o)
	}
	g.field.Prune()
	g.pruneCoins()

	return core.StepResult{State: g.State(), Events: events}
}

// checkCollision tests the obstacles and the ground. The avatar is clamped
// onto the ground when it lands.
func (g *Game) checkCollision() bool {
	box := g.avatar.CollisionBox()
	margin := g.cfg.Obstacles.CollisionMargin
	for _, o := range g.field.Obstacles() {
		if o.Collides(box, margin) {
			return true
		}
	}

	groundY := g.cfg.World.GroundY()
	if g.avatar.Y+g.avatar.CollisionRadius >= groundY {
		g.avatar.Y = groundY - g.avatar.CollisionRadius
		g.avatar.VelY = 0
		return true
	}
	return false
}

// collectCoins removes coins the avatar touches and reports them.
func (g *Game) collectCoins(events []core.Event) []core.Event {
	center := g.avatar.Center()
	kept := g.coins[:0]
	for _, c := range g.coins {
		if c.CollectedBy(center) {
			g.collected += c.Value
			events = append(events, core.Event{Kind: core.EventCoin, Points: c.Value})
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
	return events
}

// maybeSpawnCoin places a coin in the middle of the new obstacle's gap.
func (g *Game) maybeSpawnCoin(o Obstacle) {
	cc := g.cfg.Collectibles
	if cc.SpawnChance <= 0 || g.rng.Float64() >= cc.SpawnChance {
		return
	}
	g.coins = append(g.coins, Coin{
		X:     o.X + o.Width/2,
		Y:     o.GapTop + o.GapSize()/2,
		Size:  cc.Size,
		Value: cc.Value,
	})
}

func (g *Game) pruneCoins() {
	kept := g.coins[:0]
	for _, c := range g.coins {
		if !c.IsOffscreen() {
			kept = append(kept, c)
		}
	}
	g.coins = kept
}

// Avatar returns the bird for rendering.
func (g *Game) Avatar() *Avatar {
	return g.avatar
}

// Obstacles returns the live obstacles for rendering.
func (g *Game) Obstacles() []Obstacle {
	return g.field.Obstacles()
}

// Coins returns the live coins for rendering.
func (g *Game) Coins() []Coin {
	return g.coins
}

// Ticks returns the number of simulation ticks since Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Coins:    g.collected,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
