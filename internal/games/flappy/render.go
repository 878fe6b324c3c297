package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▒'
	BodyChar      = '●'
	CoinChar      = 'o'
	TrailChar     = '·'
	WallChar      = '│'
)

// wingChars maps each WingFrame to the glyph drawn behind the body.
var wingChars = [frameCount]rune{'-', '/', '^', '\\', 'v'}

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// viewport maps world coordinates onto screen cells, keeping the world's
// aspect ratio and centring it horizontally.
type viewport struct {
	offsetX int
	width   int
	height  int
	scaleX  float64
	scaleY  float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	world := g.cfg.World
	h := dst.Height()
	w := int(world.Width / world.Height * float64(h) * cellAspect)
	if w > dst.Width() || w <= 0 {
		w = dst.Width()
	}
	return viewport{
		offsetX: (dst.Width() - w) / 2,
		width:   w,
		height:  h,
		scaleX:  float64(w) / world.Width,
		scaleY:  float64(h) / world.Height,
	}
}

func (v viewport) col(x float64) int {
	return v.offsetX + int(math.Floor(x*v.scaleX))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.scaleY))
}

// set draws only inside the viewport so obstacles entering from the right
// never spill into the margins.
func (v viewport) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	if col < v.offsetX || col >= v.offsetX+v.width {
		return
	}
	dst.SetColored(col, row, r, c)
}

// Render draws the current run into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := g.viewport(dst)

	// Side walls when the world is narrower than the terminal
	if vp.offsetX > 0 {
		for y := 0; y < vp.height; y++ {
			dst.SetColored(vp.offsetX-1, y, WallChar, core.ColorGray)
			dst.SetColored(vp.offsetX+vp.width, y, WallChar, core.ColorGray)
		}
	}

	groundRow := vp.row(g.cfg.World.GroundY())
	for y := groundRow; y < vp.height; y++ {
		for x := vp.offsetX; x < vp.offsetX+vp.width; x++ {
			dst.SetColored(x, y, GroundChar, core.ColorOrange)
		}
	}

	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, vp, o, groundRow)
	}

	for _, c := range g.coins {
		vp.set(dst, vp.col(c.X), vp.row(c.Y), CoinChar, core.ColorBrightYellow)
	}

	for _, p := range g.avatar.Animation().Trail() {
		vp.set(dst, vp.col(p.X), vp.row(p.Y), TrailChar, core.ColorGray)
	}

	g.drawAvatar(dst, vp)

	// Draw HUD
	dst.DrawText(vp.offsetX+1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorWhite)
	if g.collected > 0 {
		dst.DrawText(vp.offsetX+1, 1, fmt.Sprintf(" Coins: %d ", g.collected), core.ColorYellow)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawObstacle renders the two barrier bodies and their caps.
func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle, groundRow int) {
	left, right := vp.col(o.X), vp.col(o.Right())
	capLeft, capRight := vp.col(o.X-o.CapOverhang), vp.col(o.Right()+o.CapOverhang)
	if right <= left {
		right = left + 1
	}
	topRow := vp.row(o.GapTop)
	bottomRow := vp.row(o.GapBottom)

	for y := 0; y < topRow; y++ {
		for x := left; x < right; x++ {
			vp.set(dst, x, y, PipeChar, core.ColorGreen)
		}
	}
	for y := bottomRow; y < groundRow; y++ {
		for x := left; x < right; x++ {
			vp.set(dst, x, y, PipeChar, core.ColorGreen)
		}
	}

	// Caps sit at the gap edges and are slightly wider than the body
	for x := capLeft; x <= capRight; x++ {
		if topRow > 0 {
			vp.set(dst, x, topRow-1, PipeCapTop, core.ColorBrightGreen)
		}
		if bottomRow < groundRow {
			vp.set(dst, x, bottomRow, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawAvatar renders the body, the wing for the current frame and a beak
// that hints at the tilt.
func (g *Game) drawAvatar(dst *core.Screen, vp viewport) {
	a := g.avatar
	col, row := vp.col(a.X), vp.row(a.Y)
	anim := a.Animation()

	beak := '>'
	switch rot := anim.Rotation(); {
	case rot <= -10:
		beak = '/'
	case rot >= 10:
		beak = '\\'
	}

	vp.set(dst, col-1, row, wingChars[anim.Frame()], core.ColorWhite)
	vp.set(dst, col, row, BodyChar, core.ColorBrightYellow)
	vp.set(dst, col+1, row, beak, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
